package vkctx

import (
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/vkcontext/internal/utils"
	"github.com/vkngwrapper/vkcontext/lifetime"
	"github.com/vkngwrapper/vkcontext/memtype"
	"github.com/vkngwrapper/vkcontext/shader"
	"golang.org/x/exp/slog"
)

// Context owns a device, window surface and swapchain created against a Platform. It replaces
// process-wide device state: every handle it creates is recorded in a resource graph, and
// Destroy releases them in dependency order.
type Context struct {
	logger   *slog.Logger
	platform Platform
	options  CreateOptions
	graph    *lifetime.Graph
	mutex    utils.OptionalRWMutex

	validation     bool
	debugMessenger bool
	ready          bool

	instanceID  lifetime.ID
	surfaceID   lifetime.ID
	deviceID    lifetime.ID
	swapchainID lifetime.ID

	physicalDevice   core1_0.PhysicalDevice
	deviceProperties *core1_0.PhysicalDeviceProperties
	memoryTypes      memtype.Catalog
	queueFamilyIndex int
	queue            core1_0.Queue

	displaySize    core1_0.Extent2D
	displayFormat  core1_0.Format
	imageViews     []core1_0.ImageView
	imageViewIDs   []lifetime.ID
	framebuffers   []core1_0.Framebuffer
	framebufferIDs []lifetime.ID
}

// IsReady returns true between a successful New and Destroy. Hosts poll it to decide whether
// frames can be drawn.
func (c *Context) IsReady() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.ready
}

// DrawFrame is the per-frame entry point. It does not record or submit any work; it only
// reports whether the context is ready.
func (c *Context) DrawFrame() bool {
	return c.IsReady()
}

// Destroy releases every object the context created, dependents before the objects they were
// created from. Destroying a context twice is a no-op.
func (c *Context) Destroy() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.logger.Debug("Context::Destroy")

	c.ready = false
	c.imageViews = nil
	c.imageViewIDs = nil
	c.framebuffers = nil
	c.framebufferIDs = nil

	return c.graph.ReleaseAll()
}

// PhysicalDevice returns the physical device the context selected
func (c *Context) PhysicalDevice() core1_0.PhysicalDevice {
	return c.physicalDevice
}

// PhysicalDeviceProperties returns the properties of the selected physical device
func (c *Context) PhysicalDeviceProperties() *core1_0.PhysicalDeviceProperties {
	return c.deviceProperties
}

// QueueFamilyIndex returns the graphics queue family the logical device was created with
func (c *Context) QueueFamilyIndex() int {
	return c.queueFamilyIndex
}

// Queue returns the graphics queue
func (c *Context) Queue() core1_0.Queue {
	return c.queue
}

// MemoryTypes returns the memory type catalog of the selected physical device
func (c *Context) MemoryTypes() memtype.Catalog {
	return c.memoryTypes
}

// DisplaySize returns the swapchain extent
func (c *Context) DisplaySize() core1_0.Extent2D {
	return c.displaySize
}

// DisplayFormat returns the swapchain image format
func (c *Context) DisplayFormat() core1_0.Format {
	return c.displayFormat
}

// SwapchainLength returns the number of images in the swapchain
func (c *Context) SwapchainLength() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.imageViews)
}

// ImageViews returns one colour view per swapchain image
func (c *Context) ImageViews() []core1_0.ImageView {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.imageViews
}

// Framebuffers returns the framebuffers from the most recent call to CreateFramebuffers
func (c *Context) Framebuffers() []core1_0.Framebuffer {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.framebuffers
}

// FindMemoryTypeIndex maps a resource's memory type bits and the property flags the caller
// needs onto a memory type of the selected physical device. The lowest eligible index wins.
// If nothing matches, the returned error wraps memtype.ErrNoSuitableMemoryType and the caller
// may retry with a weaker requirement.
func (c *Context) FindMemoryTypeIndex(typeBits uint32, required core1_0.MemoryPropertyFlags) (int, error) {
	c.logger.Debug("Context::FindMemoryTypeIndex")

	return memtype.Find(typeBits, required, c.memoryTypes)
}

// FindPreferredMemoryTypeIndex is FindMemoryTypeIndex with a soft preference: among the memory
// types that carry every required flag, it picks the one missing the fewest preferred flags and
// carrying the fewest notPreferred flags.
func (c *Context) FindPreferredMemoryTypeIndex(
	typeBits uint32,
	required, preferred, notPreferred core1_0.MemoryPropertyFlags,
) (int, error) {
	c.logger.Debug("Context::FindPreferredMemoryTypeIndex")

	return memtype.FindPreferred(typeBits, required, preferred, notPreferred, c.memoryTypes)
}

// IsMemoryTypeHostNonCoherent returns true if the memory type can be mapped but writes must be
// flushed explicitly
func (c *Context) IsMemoryTypeHostNonCoherent(memoryTypeIndex int) bool {
	return c.memoryTypes.IsHostNonCoherent(memoryTypeIndex)
}

// LoadShaderModule reads a SPIR-V asset and creates a shader module on the context's device.
// The module is destroyed with the context.
func (c *Context) LoadShaderModule(assets fs.FS, path string) (core1_0.ShaderModule, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.logger.Debug("Context::LoadShaderModule", slog.String("path", path))

	if !c.ready {
		return core1_0.ShaderModule{}, errors.Wrapf(ErrNotReady, "cannot load shader %s", path)
	}

	module, err := shader.LoadModule(c.platform, assets, path)
	if err != nil {
		return core1_0.ShaderModule{}, err
	}

	_, err = c.graph.Acquire("shader module "+path, func() error {
		c.platform.DestroyShaderModule(module)
		return nil
	}, c.deviceID)
	if err != nil {
		c.platform.DestroyShaderModule(module)
		return core1_0.ShaderModule{}, err
	}

	return module, nil
}
