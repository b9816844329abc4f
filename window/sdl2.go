// Package window opens an SDL2 window that a Vulkan context can present to. SDL2 provides the
// native window on Android as well as on desktop systems.
package window

import (
	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
	"golang.org/x/exp/slog"
)

// Options describes the window to open
type Options struct {
	Title string
	// Width and Height are ignored by platforms that only offer fullscreen windows
	Width  int
	Height int
}

// Window is an SDL2 window created with Vulkan support
type Window struct {
	logger *slog.Logger
	window *sdl.Window
}

// Open initializes SDL video and opens a window. The caller must call Close, and every call on the
// returned Window must be made from the thread that opened it.
func Open(logger *slog.Logger, options Options) (*Window, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize SDL video")
	}

	window, err := sdl.CreateWindow(
		options.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(options.Width), int32(options.Height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrapf(err, "failed to open window %q", options.Title)
	}

	logger.Debug("Window::Open", slog.String("title", options.Title), slog.Int("width", options.Width), slog.Int("height", options.Height))
	return &Window{logger: logger, window: window}, nil
}

// Loader returns the Vulkan loader SDL found for this window
func (w *Window) Loader() (core1_0.GlobalDriver, error) {
	driver, err := core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load Vulkan")
	}
	return driver, nil
}

// VulkanInstanceExtensions lists the instance extensions SDL needs to create a surface for the
// window: VK_KHR_surface plus the platform surface extension
func (w *Window) VulkanInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

// CreateVulkanSurface creates a presentation surface for the window
func (w *Window) CreateVulkanSurface(instance core1_0.Instance, surfaceDriver khr_surface.ExtensionDriver) (khr_surface.Surface, error) {
	return vkng_sdl2.CreateSurface(instance, surfaceDriver, w.window)
}

// DrawableSize returns the size of the window in pixels
func (w *Window) DrawableSize() (int, int) {
	width, height := w.window.VulkanGetDrawableSize()
	return int(width), int(height)
}

// PollEvents drains the SDL event queue into state
func (w *Window) PollEvents(state *State) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		state.Apply(event)
	}
}

// Close destroys the window and shuts SDL down
func (w *Window) Close() {
	w.logger.Debug("Window::Close")

	err := w.window.Destroy()
	if err != nil {
		w.logger.Error("failed to destroy window", slog.Any("error", err))
	}
	sdl.Quit()
}
