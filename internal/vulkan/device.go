package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"github.com/vkngwrapper/vkcontext/vkctx"
)

func (d *Driver) PhysicalDevices() ([]core1_0.PhysicalDevice, error) {
	physicalDevices, _, err := d.instanceDriver.EnumeratePhysicalDevices()
	return physicalDevices, err
}

func (d *Driver) PhysicalDeviceProperties(physicalDevice core1_0.PhysicalDevice) (*core1_0.PhysicalDeviceProperties, error) {
	return d.instanceDriver.GetPhysicalDeviceProperties(physicalDevice)
}

func (d *Driver) QueueFamilyFlags(physicalDevice core1_0.PhysicalDevice) []core1_0.QueueFlags {
	queueFamilies := d.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(physicalDevice)

	flags := make([]core1_0.QueueFlags, 0, len(queueFamilies))
	for _, queueFamily := range queueFamilies {
		flags = append(flags, queueFamily.QueueFlags)
	}
	return flags
}

func (d *Driver) MemoryTypes(physicalDevice core1_0.PhysicalDevice) []core1_0.MemoryType {
	return d.instanceDriver.GetPhysicalDeviceMemoryProperties(physicalDevice).MemoryTypes
}

func (d *Driver) AvailableDeviceExtensions(physicalDevice core1_0.PhysicalDevice) ([]string, error) {
	extensions, _, err := d.instanceDriver.EnumerateDeviceExtensionProperties(physicalDevice)
	if err != nil {
		return nil, err
	}

	return sortedNames(extensions), nil
}

func (d *Driver) CreateDevice(info vkctx.DeviceInfo) (core1_0.Queue, error) {
	if d.deviceDriver != nil {
		return core1_0.Queue{}, errors.New("device has already been created")
	}

	device, _, err := d.instanceDriver.CreateDevice(info.PhysicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: []core1_0.DeviceQueueCreateInfo{
			{
				QueueFamilyIndex: info.QueueFamilyIndex,
				QueuePriorities:  info.QueuePriorities,
			},
		},
		EnabledExtensionNames: info.Extensions,
	})
	if err != nil {
		return core1_0.Queue{}, err
	}

	deviceDriver, err := d.instanceDriver.BuildDeviceDriver(device)
	if err != nil {
		return core1_0.Queue{}, err
	}

	d.deviceDriver = deviceDriver
	d.swapchainDriver = khr_swapchain.CreateExtensionDriverFromCoreDriver(deviceDriver)
	return deviceDriver.GetQueue(info.QueueFamilyIndex, 0), nil
}

func (d *Driver) DestroyDevice() {
	if d.deviceDriver == nil {
		return
	}

	d.deviceDriver.DestroyDevice(nil)
	d.deviceDriver = nil
	d.swapchainDriver = nil
}

func (d *Driver) CreateShaderModule(code []uint32) (core1_0.ShaderModule, error) {
	module, _, err := d.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: code,
	})
	return module, err
}

func (d *Driver) DestroyShaderModule(module core1_0.ShaderModule) {
	d.deviceDriver.DestroyShaderModule(module, nil)
}
