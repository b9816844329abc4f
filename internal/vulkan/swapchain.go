package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"github.com/vkngwrapper/vkcontext/vkctx"
)

func (d *Driver) SurfaceCapabilities(physicalDevice core1_0.PhysicalDevice) (*khr_surface.SurfaceCapabilities, error) {
	capabilities, _, err := d.surfaceDriver.GetPhysicalDeviceSurfaceCapabilities(d.surface, physicalDevice)
	return capabilities, err
}

func (d *Driver) SurfaceFormats(physicalDevice core1_0.PhysicalDevice) ([]khr_surface.SurfaceFormat, error) {
	formats, _, err := d.surfaceDriver.GetPhysicalDeviceSurfaceFormats(d.surface, physicalDevice)
	return formats, err
}

// SwapchainCreateInfo fills in the parts of swapchain creation that the context never varies:
// FIFO presentation, exclusive sharing, identity pre-transform, inherited composite alpha, a
// single colour-attachment layer and no clipping.
func SwapchainCreateInfo(surface khr_surface.Surface, info vkctx.SwapchainInfo) khr_swapchain.SwapchainCreateInfo {
	return khr_swapchain.SwapchainCreateInfo{
		Surface: surface,

		MinImageCount:    info.MinImageCount,
		ImageFormat:      info.SurfaceFormat.Format,
		ImageColorSpace:  info.SurfaceFormat.ColorSpace,
		ImageExtent:      info.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   core1_0.SharingModeExclusive,
		QueueFamilyIndices: []int{info.QueueFamilyIndex},

		PreTransform:   khr_surface.TransformIdentity,
		CompositeAlpha: khr_surface.CompositeAlphaInherit,
		PresentMode:    khr_surface.PresentModeFIFO,
		Clipped:        false,
	}
}

func (d *Driver) CreateSwapchain(info vkctx.SwapchainInfo) error {
	if d.swapchainDriver == nil {
		return errors.New("cannot create a swapchain without a device")
	}
	if d.swapchain.Initialized() {
		return errors.New("swapchain has already been created")
	}

	swapchain, _, err := d.swapchainDriver.CreateSwapchain(nil, SwapchainCreateInfo(d.surface, info))
	if err != nil {
		return err
	}

	d.swapchain = swapchain
	return nil
}

func (d *Driver) SwapchainImages() ([]core1_0.Image, error) {
	images, _, err := d.swapchainDriver.GetSwapchainImages(d.swapchain)
	return images, err
}

func (d *Driver) DestroySwapchain() {
	if !d.swapchain.Initialized() {
		return
	}

	d.swapchainDriver.DestroySwapchain(d.swapchain, nil)
	d.swapchain = khr_swapchain.Swapchain{}
}

func (d *Driver) CreateImageView(image core1_0.Image, format core1_0.Format) (core1_0.ImageView, error) {
	imageView, _, err := d.deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
		Image:    image,
		ViewType: core1_0.ImageViewType2D,
		Format:   format,
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     core1_0.ImageAspectColor,
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	})
	return imageView, err
}

func (d *Driver) DestroyImageView(imageView core1_0.ImageView) {
	d.deviceDriver.DestroyImageView(imageView, nil)
}

func (d *Driver) CreateFramebuffer(info vkctx.FramebufferInfo) (core1_0.Framebuffer, error) {
	framebuffer, _, err := d.deviceDriver.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
		RenderPass:  info.RenderPass,
		Layers:      1,
		Attachments: info.Attachments,
		Width:       info.Extent.Width,
		Height:      info.Extent.Height,
	})
	return framebuffer, err
}

func (d *Driver) DestroyFramebuffer(framebuffer core1_0.Framebuffer) {
	d.deviceDriver.DestroyFramebuffer(framebuffer, nil)
}
