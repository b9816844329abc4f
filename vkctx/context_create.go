package vkctx

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/vkcontext/internal/utils"
	"github.com/vkngwrapper/vkcontext/lifetime"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific context behaviors to activate or deactivate
type CreateFlags int32

var contextCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	contextCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return contextCreateFlagsMapping.FlagsToString(f)
}

const (
	// ContextCreateExternallySynchronized ensures that the context will not be synchronized
	// internally. The consumer must guarantee it is used from only one thread at a time.
	ContextCreateExternallySynchronized CreateFlags = 1 << iota
	// ContextCreateValidation enables the validation layers and the debug messenger regardless
	// of how the module was built
	ContextCreateValidation
	// ContextCreateNoValidation disables the validation layers and the debug messenger regardless
	// of how the module was built. It takes priority over ContextCreateValidation.
	ContextCreateNoValidation
)

func init() {
	ContextCreateExternallySynchronized.Register("ContextCreateExternallySynchronized")
	ContextCreateValidation.Register("ContextCreateValidation")
	ContextCreateNoValidation.Register("ContextCreateNoValidation")
}

const (
	// DefaultSurfaceFormat is the swapchain format the context requires when CreateOptions does
	// not name one
	DefaultSurfaceFormat core1_0.Format = core1_0.FormatR8G8B8A8UnsignedNormalized
	// DefaultApplicationName is used when CreateOptions.Application.Name is empty
	DefaultApplicationName string = "VULKAN"
	// DefaultEngineName is used when CreateOptions.Application.EngineName is empty
	DefaultEngineName string = "null"
)

// DefaultValidationLayers are the layers requested when validation is active and
// CreateOptions.ValidationLayers is empty
var DefaultValidationLayers = []string{"VK_LAYER_KHRONOS_validation"}

// ApplicationInfo is reported to the driver on instance creation
type ApplicationInfo struct {
	Name          string
	Version       common.Version
	EngineName    string
	EngineVersion common.Version
	// APIVersion is the highest Vulkan version the application uses. It defaults to 1.0.
	APIVersion common.APIVersion
}

// CreateOptions contains optional settings when creating a context: it is valid to leave all
// fields blank
type CreateOptions struct {
	// Flags indicates specific context behaviors to activate or deactivate
	Flags CreateFlags
	// Application is reported to the driver on instance creation
	Application ApplicationInfo
	// ValidationLayers replaces DefaultValidationLayers when validation is active
	ValidationLayers []string
	// SurfaceFormat replaces DefaultSurfaceFormat as the format the swapchain requires
	SurfaceFormat core1_0.Format
}

func (o CreateOptions) validationEnabled() bool {
	if o.Flags&ContextCreateNoValidation != 0 {
		return false
	}
	return o.Flags&ContextCreateValidation != 0 || validationDefault
}

func (o CreateOptions) withDefaults() CreateOptions {
	if o.Application.Name == "" {
		o.Application.Name = DefaultApplicationName
	}
	if o.Application.Version == 0 {
		o.Application.Version = common.CreateVersion(1, 0, 0)
	}
	if o.Application.EngineName == "" {
		o.Application.EngineName = DefaultEngineName
	}
	if o.Application.EngineVersion == 0 {
		o.Application.EngineVersion = common.CreateVersion(1, 0, 0)
	}
	if o.Application.APIVersion == 0 {
		o.Application.APIVersion = common.Vulkan1_0
	}
	if len(o.ValidationLayers) == 0 {
		o.ValidationLayers = DefaultValidationLayers
	}
	if o.SurfaceFormat == 0 {
		o.SurfaceFormat = DefaultSurfaceFormat
	}

	return o
}

// New initializes a device context: instance, debug messenger (when validation is active),
// window surface, physical device, logical device, swapchain and swapchain image views. On
// success the context is ready. On failure, everything created so far is destroyed and the
// error is returned; whether that is fatal is up to the caller.
//
// logger - receives a trace of the setup sequence and any validation messages
//
// platform - the graphics API and window system the context is created against
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, platform Platform, options CreateOptions) (*Context, error) {
	options = options.withDefaults()

	c := &Context{
		logger:     logger,
		platform:   platform,
		options:    options,
		graph:      lifetime.NewGraph(logger),
		mutex:      utils.NewOptionalRWMutex(options.Flags&ContextCreateExternallySynchronized == 0),
		validation: options.validationEnabled(),
	}

	err := c.initialize()
	if err != nil {
		releaseErr := c.graph.ReleaseAll()
		if releaseErr != nil {
			logger.Error("failed to release partially-initialized context", slog.Any("error", releaseErr))
		}
		return nil, err
	}

	c.ready = true
	logger.Info("context ready",
		slog.String("device", c.deviceProperties.DriverName),
		slog.Int("queueFamily", c.queueFamilyIndex),
		slog.Int("swapchainLength", len(c.imageViews)),
	)
	return c, nil
}

func (c *Context) initialize() error {
	err := c.createInstance()
	if err != nil {
		return err
	}

	err = c.setupDebugMessenger()
	if err != nil {
		return err
	}

	err = c.createSurface()
	if err != nil {
		return err
	}

	err = c.pickPhysicalDevice()
	if err != nil {
		return err
	}

	err = c.createLogicalDevice()
	if err != nil {
		return err
	}

	err = c.createSwapchain()
	if err != nil {
		return err
	}

	return c.createImageViews()
}
