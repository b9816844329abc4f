package vkctx

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/vkcontext/memtype"
	"golang.org/x/exp/slog"
)

func (c *Context) createInstance() error {
	c.logger.Debug("Context::createInstance", slog.Bool("validation", c.validation))

	availableExtensions, err := c.platform.AvailableInstanceExtensions()
	if err != nil {
		return errors.Wrap(err, "failed to enumerate instance extensions")
	}

	var availableLayers []string
	if c.validation {
		availableLayers, err = c.platform.AvailableInstanceLayers()
		if err != nil {
			return errors.Wrap(err, "failed to enumerate instance layers")
		}
	}

	extensionData, err := NegotiateInstanceExtensions(
		availableExtensions,
		availableLayers,
		c.platform.SurfaceExtensions(),
		c.validation,
		c.options.ValidationLayers,
	)
	if err != nil {
		return err
	}
	c.debugMessenger = extensionData.DebugMessenger

	if c.validation && !extensionData.DebugMessenger {
		c.logger.Warn("validation layers enabled without a debug messenger: validation messages will not be logged")
	}

	err = c.platform.CreateInstance(InstanceInfo{
		ApplicationName:      c.options.Application.Name,
		ApplicationVersion:   c.options.Application.Version,
		EngineName:           c.options.Application.EngineName,
		EngineVersion:        c.options.Application.EngineVersion,
		APIVersion:           c.options.Application.APIVersion,
		Extensions:           extensionData.Extensions,
		Layers:               extensionData.Layers,
		EnumeratePortability: extensionData.EnumeratePortability,
		DebugMessenger:       extensionData.DebugMessenger,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create instance")
	}

	c.instanceID, err = c.graph.Acquire("instance", func() error {
		c.platform.DestroyInstance()
		return nil
	})
	return err
}

func (c *Context) setupDebugMessenger() error {
	if !c.debugMessenger {
		return nil
	}

	c.logger.Debug("Context::setupDebugMessenger")

	err := c.platform.CreateDebugMessenger()
	if err != nil {
		return errors.Wrap(err, "failed to create debug messenger")
	}

	_, err = c.graph.Acquire("debug messenger", func() error {
		c.platform.DestroyDebugMessenger()
		return nil
	}, c.instanceID)
	return err
}

func (c *Context) createSurface() error {
	c.logger.Debug("Context::createSurface")

	err := c.platform.CreateSurface()
	if err != nil {
		return errors.Wrap(err, "failed to create window surface")
	}

	c.surfaceID, err = c.graph.Acquire("surface", func() error {
		c.platform.DestroySurface()
		return nil
	}, c.instanceID)
	return err
}

func (c *Context) pickPhysicalDevice() error {
	c.logger.Debug("Context::pickPhysicalDevice")

	physicalDevices, err := c.platform.PhysicalDevices()
	if err != nil {
		return errors.Wrap(err, "failed to enumerate physical devices")
	}
	if len(physicalDevices) == 0 {
		return ErrNoPhysicalDevice
	}

	// The first device reported is used; no ranking is performed
	c.physicalDevice = physicalDevices[0]

	c.deviceProperties, err = c.platform.PhysicalDeviceProperties(c.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "failed to read physical device properties")
	}

	queueFamily, ok := FirstGraphicsQueueFamily(c.platform.QueueFamilyFlags(c.physicalDevice))
	if !ok {
		return errors.Wrapf(ErrNoGraphicsQueueFamily, "physical device %s", c.deviceProperties.DriverName)
	}
	c.queueFamilyIndex = queueFamily

	c.memoryTypes, err = memtype.NewCatalog(c.platform.MemoryTypes(c.physicalDevice))
	if err != nil {
		return errors.Wrapf(err, "physical device %s", c.deviceProperties.DriverName)
	}

	c.logger.Debug("Context::pickPhysicalDevice selected",
		slog.String("device", c.deviceProperties.DriverName),
		slog.Int("candidates", len(physicalDevices)),
		slog.Int("queueFamily", c.queueFamilyIndex),
		slog.Int("memoryTypes", c.memoryTypes.Len()),
	)
	return nil
}

// FirstGraphicsQueueFamily returns the index of the first queue family that supports graphics work
func FirstGraphicsQueueFamily(families []core1_0.QueueFlags) (int, bool) {
	for index, flags := range families {
		if flags&core1_0.QueueGraphics != 0 {
			return index, true
		}
	}

	return -1, false
}

func (c *Context) createLogicalDevice() error {
	c.logger.Debug("Context::createLogicalDevice")

	availableExtensions, err := c.platform.AvailableDeviceExtensions(c.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "failed to enumerate device extensions")
	}

	extensions, err := NegotiateDeviceExtensions(availableExtensions)
	if err != nil {
		return errors.Wrapf(err, "physical device %s", c.deviceProperties.DriverName)
	}

	c.queue, err = c.platform.CreateDevice(DeviceInfo{
		PhysicalDevice:   c.physicalDevice,
		QueueFamilyIndex: c.queueFamilyIndex,
		QueuePriorities:  []float32{1.0},
		Extensions:       extensions,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create logical device")
	}

	c.deviceID, err = c.graph.Acquire("device", func() error {
		c.platform.DestroyDevice()
		return nil
	}, c.instanceID)
	return err
}
