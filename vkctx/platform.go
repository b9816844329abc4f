package vkctx

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

//go:generate mockgen -source platform.go -destination ./mocks/platform.go -package mock_vkctx

// InstanceInfo describes the instance the context requests from the platform
type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	Extensions []string
	Layers     []string

	// EnumeratePortability requests that portability (non-conformant) implementations be listed
	// alongside conformant ones
	EnumeratePortability bool
	// DebugMessenger chains a debug messenger onto instance creation so that instance creation
	// and destruction are also reported
	DebugMessenger bool
}

// DeviceInfo describes the logical device the context requests from the platform
type DeviceInfo struct {
	PhysicalDevice   core1_0.PhysicalDevice
	QueueFamilyIndex int
	QueuePriorities  []float32
	Extensions       []string
}

// SwapchainInfo describes the swapchain the context requests from the platform. The
// presentation mode, sharing mode, pre-transform and composite alpha are fixed by the platform.
type SwapchainInfo struct {
	SurfaceFormat    khr_surface.SurfaceFormat
	Extent           core1_0.Extent2D
	MinImageCount    int
	QueueFamilyIndex int
}

// FramebufferInfo describes a single swapchain framebuffer
type FramebufferInfo struct {
	RenderPass  core1_0.RenderPass
	Attachments []core1_0.ImageView
	Extent      core1_0.Extent2D
}

// DeviceProvider creates and destroys the instance, the window surface and the logical device,
// and answers capability queries about physical devices
type DeviceProvider interface {
	AvailableInstanceExtensions() ([]string, error)
	AvailableInstanceLayers() ([]string, error)
	// SurfaceExtensions lists the instance extensions the window needs to create a surface
	SurfaceExtensions() []string

	CreateInstance(info InstanceInfo) error
	DestroyInstance()

	CreateSurface() error
	DestroySurface()

	PhysicalDevices() ([]core1_0.PhysicalDevice, error)
	PhysicalDeviceProperties(physicalDevice core1_0.PhysicalDevice) (*core1_0.PhysicalDeviceProperties, error)
	QueueFamilyFlags(physicalDevice core1_0.PhysicalDevice) []core1_0.QueueFlags
	MemoryTypes(physicalDevice core1_0.PhysicalDevice) []core1_0.MemoryType
	AvailableDeviceExtensions(physicalDevice core1_0.PhysicalDevice) ([]string, error)

	CreateDevice(info DeviceInfo) (core1_0.Queue, error)
	DestroyDevice()

	CreateShaderModule(code []uint32) (core1_0.ShaderModule, error)
	DestroyShaderModule(module core1_0.ShaderModule)
}

// SwapchainProvider creates the swapchain and the per-image objects derived from it
type SwapchainProvider interface {
	SurfaceCapabilities(physicalDevice core1_0.PhysicalDevice) (*khr_surface.SurfaceCapabilities, error)
	SurfaceFormats(physicalDevice core1_0.PhysicalDevice) ([]khr_surface.SurfaceFormat, error)

	CreateSwapchain(info SwapchainInfo) error
	SwapchainImages() ([]core1_0.Image, error)
	DestroySwapchain()

	CreateImageView(image core1_0.Image, format core1_0.Format) (core1_0.ImageView, error)
	DestroyImageView(imageView core1_0.ImageView)

	CreateFramebuffer(info FramebufferInfo) (core1_0.Framebuffer, error)
	DestroyFramebuffer(framebuffer core1_0.Framebuffer)
}

// DebugProvider registers and unregisters the validation message callback
type DebugProvider interface {
	CreateDebugMessenger() error
	DestroyDebugMessenger()
}

// Platform is everything the context needs from the graphics API and the window system
type Platform interface {
	DeviceProvider
	SwapchainProvider
	DebugProvider
}
