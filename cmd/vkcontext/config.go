package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vkngwrapper/vkcontext/vkctx"
	"golang.org/x/exp/slog"
)

// Config is the host's configuration, read from flags and VKCONTEXT_* environment variables
type Config struct {
	AppName    string `mapstructure:"app-name"`
	Validation string `mapstructure:"validation"`
	LogLevel   string `mapstructure:"log-level"`
	LogFormat  string `mapstructure:"log-format"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Report     bool   `mapstructure:"report"`
	Shader     string `mapstructure:"shader"`
	Frames     int    `mapstructure:"frames"`
}

func addFlags(flags *pflag.FlagSet) {
	flags.String("app-name", vkctx.DefaultApplicationName, "application name reported to the driver")
	flags.String("validation", "auto", "validation layers: auto (build default), on, or off")
	flags.String("log-level", "info", "log level: debug, info, warn, or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Int("width", 1280, "window width, ignored on fullscreen-only platforms")
	flags.Int("height", 720, "window height, ignored on fullscreen-only platforms")
	flags.Bool("report", false, "print a JSON report of the context once it is ready")
	flags.String("shader", "", "SPIR-V file to load as a shader module after setup")
	flags.Int("frames", 0, "exit after this many frames; 0 runs until the window is closed")
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	v.SetEnvPrefix("VKCONTEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(flags)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to bind flags")
	}

	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read configuration")
	}

	if config.Width <= 0 || config.Height <= 0 {
		return Config{}, errors.Newf("window size %dx%d must be positive", config.Width, config.Height)
	}
	if config.Frames < 0 {
		return Config{}, errors.Newf("frame count %d must not be negative", config.Frames)
	}

	return config, nil
}

func (c Config) createFlags() (vkctx.CreateFlags, error) {
	switch strings.ToLower(c.Validation) {
	case "auto", "":
		return 0, nil
	case "on", "true":
		return vkctx.ContextCreateValidation, nil
	case "off", "false":
		return vkctx.ContextCreateNoValidation, nil
	}

	return 0, errors.Newf("unknown validation mode %q", c.Validation)
}

func (c Config) contextOptions() (vkctx.CreateOptions, error) {
	flags, err := c.createFlags()
	if err != nil {
		return vkctx.CreateOptions{}, err
	}

	return vkctx.CreateOptions{
		// The host only touches the context from the main thread
		Flags: flags | vkctx.ContextCreateExternallySynchronized,
		Application: vkctx.ApplicationInfo{
			Name: c.AppName,
		},
	}, nil
}

func parseLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	err := parsed.UnmarshalText([]byte(level))
	if err != nil {
		return 0, errors.Wrapf(err, "unknown log level %q", level)
	}
	return parsed, nil
}

func (c Config) logger(out io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	options := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.LogFormat) {
	case "text", "":
		return slog.New(slog.NewTextHandler(out, options)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(out, options)), nil
	}

	return nil, errors.Newf("unknown log format %q", c.LogFormat)
}
