package vkctx

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"golang.org/x/exp/slices"
)

type nameSet struct {
	names *swiss.Map[string, struct{}]
}

func newNameSet(names []string) nameSet {
	set := nameSet{names: swiss.NewMap[string, struct{}](uint32(len(names)))}
	for _, name := range names {
		set.names.Put(name, struct{}{})
	}
	return set
}

func (s nameSet) Has(name string) bool {
	return s.names.Has(name)
}

func (s nameSet) Missing(names []string) []string {
	var missing []string
	for _, name := range names {
		if !s.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// InstanceExtensionData is the outcome of negotiating instance extensions and layers with the loader
type InstanceExtensionData struct {
	Extensions []string
	Layers     []string

	// EnumeratePortability is set when the loader offers VK_KHR_portability_enumeration
	EnumeratePortability bool
	// DebugMessenger is set when validation is active and the loader offers VK_EXT_debug_utils
	DebugMessenger bool
}

// NegotiateInstanceExtensions decides which instance extensions and layers to enable. The window's
// surface extensions are mandatory. The validation layers are mandatory when validation is
// active; the debug messenger extension is used if offered.
func NegotiateInstanceExtensions(
	availableExtensions, availableLayers []string,
	surfaceExtensions []string,
	validation bool,
	validationLayers []string,
) (InstanceExtensionData, error) {
	extensions := newNameSet(availableExtensions)
	data := InstanceExtensionData{}

	missing := extensions.Missing(surfaceExtensions)
	if len(missing) > 0 {
		return data, errors.Wrapf(ErrMissingExtension, "window surface requires instance extensions %v", missing)
	}
	data.Extensions = slices.Clone(surfaceExtensions)

	if extensions.Has(khr_portability_enumeration.ExtensionName) {
		data.Extensions = append(data.Extensions, khr_portability_enumeration.ExtensionName)
		data.EnumeratePortability = true
	}

	if !validation {
		return data, nil
	}

	missing = newNameSet(availableLayers).Missing(validationLayers)
	if len(missing) > 0 {
		return data, errors.Wrapf(ErrMissingLayer, "validation requested but layers %v are not installed", missing)
	}
	data.Layers = slices.Clone(validationLayers)

	if extensions.Has(ext_debug_utils.ExtensionName) {
		data.Extensions = append(data.Extensions, ext_debug_utils.ExtensionName)
		data.DebugMessenger = true
	}

	return data, nil
}

// NegotiateDeviceExtensions decides which device extensions to enable. The swapchain extension is
// mandatory; VK_KHR_portability_subset must be enabled whenever a device offers it.
func NegotiateDeviceExtensions(available []string) ([]string, error) {
	extensions := newNameSet(available)
	if !extensions.Has(khr_swapchain.ExtensionName) {
		return nil, errors.Wrapf(ErrMissingExtension, "physical device does not offer %s", khr_swapchain.ExtensionName)
	}

	enabled := []string{khr_swapchain.ExtensionName}
	if extensions.Has(khr_portability_subset.ExtensionName) {
		enabled = append(enabled, khr_portability_subset.ExtensionName)
	}

	return enabled, nil
}
