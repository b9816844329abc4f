// Command vkcontext opens a window, initializes a Vulkan device context against it, and keeps it
// alive until the window is closed. It does not render anything.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vkngwrapper/vkcontext/internal/vulkan"
	"github.com/vkngwrapper/vkcontext/vkctx"
	"github.com/vkngwrapper/vkcontext/window"
	"golang.org/x/exp/slog"
)

const framePeriod = time.Second / 60

// errReported marks errors that have already been logged
var errReported = errors.New("error already reported")

func init() {
	// SDL and the Vulkan objects created against its window must stay on the main thread
	runtime.LockOSThread()
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	command := &cobra.Command{
		Use:          "vkcontext",
		Short:        "Initialize a Vulkan device context for a window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := config.logger(os.Stderr)
			if err != nil {
				return err
			}

			err = run(logger, config)
			if err != nil {
				return reported(logger, err)
			}
			return nil
		},
	}
	addFlags(command.Flags())

	return command
}

func run(logger *slog.Logger, config Config) error {
	options, err := config.contextOptions()
	if err != nil {
		return err
	}

	win, err := window.Open(logger, window.Options{
		Title:  config.AppName,
		Width:  config.Width,
		Height: config.Height,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	loader, err := win.Loader()
	if err != nil {
		return err
	}

	context, err := vkctx.New(logger, vulkan.NewDriver(logger, loader, win), options)
	if err != nil {
		return errors.Wrap(err, "device context setup failed")
	}
	defer func() {
		err := context.Destroy()
		if err != nil {
			logger.Error("device context teardown failed", slog.Any("error", err))
		}
	}()

	if config.Shader != "" {
		_, err = context.LoadShaderModule(os.DirFS(filepath.Dir(config.Shader)), filepath.Base(config.Shader))
		if err != nil {
			return err
		}
	}

	if config.Report {
		fmt.Println(context.BuildStatsString())
	}

	return loop(logger, win, context, config.Frames)
}

func loop(logger *slog.Logger, win *window.Window, context *vkctx.Context, maxFrames int) error {
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	state := window.NewState()
	frames := 0
	for range ticker.C {
		win.PollEvents(&state)
		if !state.Running {
			break
		}
		if !state.Visible {
			continue
		}

		if !context.DrawFrame() {
			return errors.Wrap(vkctx.ErrNotReady, "device context was lost")
		}

		frames++
		if maxFrames > 0 && frames >= maxFrames {
			break
		}
	}

	logger.Info("exiting", slog.Int("frames", frames))
	return nil
}

// reported logs err at error level and marks it so that it is not printed again on exit
func reported(logger *slog.Logger, err error) error {
	logger.Error("vkcontext failed", slog.Any("error", err))
	return errors.Mark(err, errReported)
}

// exitMessage is what main prints for an error returned by the command. Errors that were
// already logged print nothing.
func exitMessage(err error) string {
	if err == nil || errors.Is(err, errReported) {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if message := exitMessage(err); message != "" {
			fmt.Fprintln(os.Stderr, message)
		}
		os.Exit(1)
	}
}
