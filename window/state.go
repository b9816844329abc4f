package window

import "github.com/veandco/go-sdl2/sdl"

// State is what the host loop needs to know about the window between frames
type State struct {
	// Running is cleared when the user or the system asks the application to quit
	Running bool
	// Visible is cleared while the window is minimized or the application is in the background
	Visible bool
}

// NewState returns the state of a freshly-opened window
func NewState() State {
	return State{Running: true, Visible: true}
}

// Apply updates the state from a single SDL event
func (s *State) Apply(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.Running = false
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_MINIMIZED, sdl.WINDOWEVENT_HIDDEN:
			s.Visible = false
		case sdl.WINDOWEVENT_RESTORED, sdl.WINDOWEVENT_SHOWN:
			s.Visible = true
		}
	}
}
