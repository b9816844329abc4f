package vkctx

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/vkcontext/lifetime"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

func (c *Context) createSwapchain() error {
	c.logger.Debug("Context::createSwapchain", slog.String("format", c.options.SurfaceFormat.String()))

	capabilities, err := c.platform.SurfaceCapabilities(c.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "failed to read surface capabilities")
	}

	formats, err := c.platform.SurfaceFormats(c.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "failed to read surface formats")
	}

	formatIndex := slices.IndexFunc(formats, func(format khr_surface.SurfaceFormat) bool {
		return format.Format == c.options.SurfaceFormat
	})
	if formatIndex < 0 {
		return errors.Wrapf(ErrSurfaceFormatUnsupported, "surface does not offer %s", c.options.SurfaceFormat)
	}
	surfaceFormat := formats[formatIndex]

	err = c.platform.CreateSwapchain(SwapchainInfo{
		SurfaceFormat:    surfaceFormat,
		Extent:           capabilities.CurrentExtent,
		MinImageCount:    capabilities.MinImageCount,
		QueueFamilyIndex: c.queueFamilyIndex,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create swapchain")
	}

	c.swapchainID, err = c.graph.Acquire("swapchain", func() error {
		c.platform.DestroySwapchain()
		return nil
	}, c.deviceID, c.surfaceID)
	if err != nil {
		return err
	}

	c.displaySize = capabilities.CurrentExtent
	c.displayFormat = surfaceFormat.Format
	return nil
}

func (c *Context) createImageViews() error {
	c.logger.Debug("Context::createImageViews")

	images, err := c.platform.SwapchainImages()
	if err != nil {
		return errors.Wrap(err, "failed to get swapchain images")
	}

	c.imageViews = make([]core1_0.ImageView, 0, len(images))
	c.imageViewIDs = make([]lifetime.ID, 0, len(images))

	for index, image := range images {
		imageView, err := c.platform.CreateImageView(image, c.displayFormat)
		if err != nil {
			return errors.Wrapf(err, "failed to create image view for swapchain image %d", index)
		}

		id, err := c.graph.Acquire(fmt.Sprintf("image view %d", index), func() error {
			c.platform.DestroyImageView(imageView)
			return nil
		}, c.swapchainID)
		if err != nil {
			c.platform.DestroyImageView(imageView)
			return err
		}

		c.imageViews = append(c.imageViews, imageView)
		c.imageViewIDs = append(c.imageViewIDs, id)
	}

	return nil
}

// CreateFramebuffers creates one framebuffer per swapchain image for the provided render pass.
// Each framebuffer has the swapchain image view as its first attachment and depthView, if it is
// not nil, as its second. Framebuffers from a previous call are destroyed first.
func (c *Context) CreateFramebuffers(renderPass core1_0.RenderPass, depthView *core1_0.ImageView) ([]core1_0.Framebuffer, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.logger.Debug("Context::CreateFramebuffers", slog.Bool("depth", depthView != nil))

	if !c.ready {
		return nil, errors.Wrap(ErrNotReady, "cannot create framebuffers")
	}

	err := c.releaseFramebuffers()
	if err != nil {
		return nil, err
	}

	framebuffers := make([]core1_0.Framebuffer, 0, len(c.imageViews))
	ids := make([]lifetime.ID, 0, len(c.imageViews))

	for index, imageView := range c.imageViews {
		attachments := []core1_0.ImageView{imageView}
		if depthView != nil {
			attachments = append(attachments, *depthView)
		}

		framebuffer, err := c.platform.CreateFramebuffer(FramebufferInfo{
			RenderPass:  renderPass,
			Attachments: attachments,
			Extent:      c.displaySize,
		})
		if err != nil {
			err = errors.Wrapf(err, "failed to create framebuffer %d", index)
			return nil, errors.CombineErrors(err, c.releaseIDs(ids))
		}

		id, err := c.graph.Acquire(fmt.Sprintf("framebuffer %d", index), func() error {
			c.platform.DestroyFramebuffer(framebuffer)
			return nil
		}, c.imageViewIDs[index])
		if err != nil {
			c.platform.DestroyFramebuffer(framebuffer)
			return nil, errors.CombineErrors(err, c.releaseIDs(ids))
		}

		framebuffers = append(framebuffers, framebuffer)
		ids = append(ids, id)
	}

	c.framebuffers = framebuffers
	c.framebufferIDs = ids
	return framebuffers, nil
}

func (c *Context) releaseFramebuffers() error {
	err := c.releaseIDs(c.framebufferIDs)
	c.framebuffers = nil
	c.framebufferIDs = nil
	return err
}

func (c *Context) releaseIDs(ids []lifetime.ID) error {
	var err error
	for i := len(ids) - 1; i >= 0; i-- {
		err = errors.CombineErrors(err, c.graph.Release(ids[i]))
	}
	return err
}
