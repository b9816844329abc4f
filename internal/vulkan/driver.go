package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"github.com/vkngwrapper/vkcontext/vkctx"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// SurfaceSource is a window that Vulkan can present to
type SurfaceSource interface {
	// VulkanInstanceExtensions lists the instance extensions needed to create a surface for the window
	VulkanInstanceExtensions() []string
	CreateVulkanSurface(instance core1_0.Instance, surfaceDriver khr_surface.ExtensionDriver) (khr_surface.Surface, error)
}

// Driver implements vkctx.Platform on top of vkngwrapper. It holds at most one of each object the
// context creates; creating a second one before destroying the first is an error.
type Driver struct {
	logger    *slog.Logger
	global    core1_0.GlobalDriver
	window    SurfaceSource
	callbacks *DebugCallbacks

	instanceDriver core1_0.CoreInstanceDriver
	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger
	surfaceDriver  khr_surface.ExtensionDriver
	surface        khr_surface.Surface

	deviceDriver    core1_0.CoreDeviceDriver
	swapchainDriver khr_swapchain.ExtensionDriver
	swapchain       khr_swapchain.Swapchain
}

var _ vkctx.Platform = &Driver{}

// NewDriver creates a Driver from a loader and a window
func NewDriver(logger *slog.Logger, global core1_0.GlobalDriver, window SurfaceSource) *Driver {
	return &Driver{
		logger:    logger,
		global:    global,
		window:    window,
		callbacks: &DebugCallbacks{Logger: logger},
	}
}

func sortedNames[V any](available map[string]V) []string {
	names := maps.Keys(available)
	slices.Sort(names)
	return names
}

func (d *Driver) AvailableInstanceExtensions() ([]string, error) {
	extensions, _, err := d.global.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	return sortedNames(extensions), nil
}

func (d *Driver) AvailableInstanceLayers() ([]string, error) {
	layers, _, err := d.global.AvailableLayers()
	if err != nil {
		return nil, err
	}

	return sortedNames(layers), nil
}

func (d *Driver) SurfaceExtensions() []string {
	return d.window.VulkanInstanceExtensions()
}

func (d *Driver) CreateInstance(info vkctx.InstanceInfo) error {
	if d.instanceDriver != nil {
		return errors.New("instance has already been created")
	}

	createInfo := core1_0.InstanceCreateInfo{
		ApplicationName:       info.ApplicationName,
		ApplicationVersion:    info.ApplicationVersion,
		EngineName:            info.EngineName,
		EngineVersion:         info.EngineVersion,
		APIVersion:            info.APIVersion,
		EnabledExtensionNames: info.Extensions,
		EnabledLayerNames:     info.Layers,
	}

	if info.EnumeratePortability {
		createInfo.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if info.DebugMessenger {
		// Also reports problems with instance creation and destruction
		createInfo.Next = d.callbacks.createInfo()
	}

	instance, _, err := d.global.CreateInstance(nil, createInfo)
	if err != nil {
		return err
	}

	instanceDriver, err := d.global.BuildInstanceDriver(instance)
	if err != nil {
		return err
	}

	d.instanceDriver = instanceDriver
	return nil
}

func (d *Driver) DestroyInstance() {
	if d.instanceDriver == nil {
		return
	}

	d.instanceDriver.DestroyInstance(nil)
	d.instanceDriver = nil
	d.debugDriver = nil
	d.surfaceDriver = nil
}

func (d *Driver) CreateDebugMessenger() error {
	if d.instanceDriver == nil {
		return errors.New("cannot create a debug messenger without an instance")
	}

	d.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(d.instanceDriver)
	messenger, _, err := d.debugDriver.CreateDebugUtilsMessenger(nil, d.callbacks.createInfo())
	if err != nil {
		return err
	}

	d.debugMessenger = messenger
	return nil
}

func (d *Driver) DestroyDebugMessenger() {
	if !d.debugMessenger.Initialized() {
		return
	}

	d.debugDriver.DestroyDebugUtilsMessenger(d.debugMessenger, nil)
	d.debugMessenger = ext_debug_utils.DebugUtilsMessenger{}
}

func (d *Driver) CreateSurface() error {
	if d.instanceDriver == nil {
		return errors.New("cannot create a surface without an instance")
	}

	d.surfaceDriver = khr_surface.CreateExtensionDriverFromCoreDriver(d.instanceDriver)
	surface, err := d.window.CreateVulkanSurface(d.instanceDriver.Instance(), d.surfaceDriver)
	if err != nil {
		return err
	}

	d.surface = surface
	return nil
}

func (d *Driver) DestroySurface() {
	if !d.surface.Initialized() {
		return
	}

	d.surfaceDriver.DestroySurface(d.surface, nil)
	d.surface = khr_surface.Surface{}
}
