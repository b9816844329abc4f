package vkctx

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// BuildStatsString returns a JSON report of the selected physical device, its memory types, the
// swapchain configuration and every object the context currently owns
func (c *Context) BuildStatsString() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	writer := jwriter.NewWriter()
	json := writer.Object()

	json.Name("Ready").Bool(c.ready)
	json.Name("Validation").Bool(c.validation)
	json.Name("DebugMessenger").Bool(c.debugMessenger)

	if c.deviceProperties != nil {
		device := json.Name("PhysicalDevice").Object()
		device.Name("Name").String(c.deviceProperties.DriverName)
		device.Name("Type").String(c.deviceProperties.DriverType.String())
		device.Name("QueueFamilyIndex").Int(c.queueFamilyIndex)
		device.End()
	}

	memoryTypes := json.Name("MemoryTypes").Array()
	for i := 0; i < c.memoryTypes.Len(); i++ {
		memoryType := memoryTypes.Object()
		memoryType.Name("Index").Int(i)
		memoryType.Name("Flags").String(c.memoryTypes.Flags(i).String())
		memoryType.End()
	}
	memoryTypes.End()

	swapchain := json.Name("Swapchain").Object()
	swapchain.Name("Format").String(c.displayFormat.String())
	swapchain.Name("Width").Int(c.displaySize.Width)
	swapchain.Name("Height").Int(c.displaySize.Height)
	swapchain.Name("ImageCount").Int(len(c.imageViews))
	swapchain.Name("FramebufferCount").Int(len(c.framebuffers))
	swapchain.End()

	resources := json.Name("Resources").Array()
	for _, name := range c.graph.Names() {
		resources.String(name)
	}
	resources.End()

	json.End()
	return string(writer.Bytes())
}
