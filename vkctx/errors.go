package vkctx

import "github.com/cockroachdb/errors"

var (
	// ErrNoPhysicalDevice is returned from New when the instance reports no physical devices
	ErrNoPhysicalDevice = errors.New("no physical device available")
	// ErrNoGraphicsQueueFamily is returned from New when the selected physical device has no
	// queue family with graphics support
	ErrNoGraphicsQueueFamily = errors.New("no graphics-capable queue family")
	// ErrSurfaceFormatUnsupported is returned from New when the window surface does not offer
	// the required swapchain format
	ErrSurfaceFormatUnsupported = errors.New("surface format not supported")
	// ErrMissingLayer is returned from New when a requested validation layer is not installed
	ErrMissingLayer = errors.New("instance layer not available")
	// ErrMissingExtension is returned from New when an extension the context depends on is
	// not offered by the loader or the physical device
	ErrMissingExtension = errors.New("extension not available")
	// ErrNotReady is returned from context operations that need a live device after the
	// context has been destroyed
	ErrNotReady = errors.New("context is not ready")
)
