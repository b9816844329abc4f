package vkctx_test

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"github.com/vkngwrapper/vkcontext/memtype"
	"github.com/vkngwrapper/vkcontext/vkctx"
	mock_vkctx "github.com/vkngwrapper/vkcontext/vkctx/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

var androidSurfaceExtensions = []string{khr_surface.ExtensionName, "VK_KHR_android_surface"}

type ContextSetup struct {
	Options vkctx.CreateOptions

	InstanceExtensions []string
	InstanceLayers     []string
	DeviceExtensions   []string
	PhysicalDevices    int
	QueueFamilies      []core1_0.QueueFlags
	MemoryTypes        []core1_0.MemoryType
	SurfaceFormats     []khr_surface.SurfaceFormat
	Capabilities       khr_surface.SurfaceCapabilities
	ImageCount         int
	// FailingImageView is the 1-based swapchain image whose view fails to create, 0 for none
	FailingImageView int
}

var errOutOfHostMemory = errors.New("out of host memory")

func defaultSetup() ContextSetup {
	return ContextSetup{
		Options: vkctx.CreateOptions{
			Flags: vkctx.ContextCreateNoValidation,
		},
		InstanceExtensions: append([]string{ext_debug_utils.ExtensionName}, androidSurfaceExtensions...),
		InstanceLayers:     []string{"VK_LAYER_KHRONOS_validation"},
		DeviceExtensions:   []string{khr_swapchain.ExtensionName},
		PhysicalDevices:    1,
		QueueFamilies: []core1_0.QueueFlags{
			core1_0.QueueTransfer,
			core1_0.QueueGraphics | core1_0.QueueCompute | core1_0.QueueTransfer,
			core1_0.QueueGraphics,
		},
		MemoryTypes: []core1_0.MemoryType{
			{PropertyFlags: core1_0.MemoryPropertyHostVisible},
			{PropertyFlags: core1_0.MemoryPropertyDeviceLocal},
			{PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent},
		},
		SurfaceFormats: []khr_surface.SurfaceFormat{
			{Format: core1_0.FormatB8G8R8A8UnsignedNormalized},
			{Format: core1_0.FormatR8G8B8A8UnsignedNormalized},
		},
		Capabilities: khr_surface.SurfaceCapabilities{
			MinImageCount: 3,
			CurrentExtent: core1_0.Extent2D{Width: 1080, Height: 2340},
		},
		ImageCount: 3,
	}
}

type CreatedObjects struct {
	Instance  vkctx.InstanceInfo
	Device    vkctx.DeviceInfo
	Swapchain vkctx.SwapchainInfo

	PhysicalDevice core1_0.PhysicalDevice
}

// expectCreation allows every creation call the setup sequence can make, at most once each.
// Destroy calls are left to the individual tests.
func expectCreation(ctrl *gomock.Controller, setup ContextSetup) (*mock_vkctx.MockPlatform, *CreatedObjects) {
	platform := mock_vkctx.NewMockPlatform(ctrl)
	created := &CreatedObjects{}

	instance := mocks.NewDummyInstance(common.Vulkan1_0, setup.InstanceExtensions)
	device := mocks.NewDummyDevice(common.Vulkan1_0, setup.DeviceExtensions)

	var physicalDevices []core1_0.PhysicalDevice
	for i := 0; i < setup.PhysicalDevices; i++ {
		physicalDevices = append(physicalDevices, mocks.NewDummyPhysicalDevice(instance, common.Vulkan1_0))
	}
	if len(physicalDevices) > 0 {
		created.PhysicalDevice = physicalDevices[0]
	}

	var images []core1_0.Image
	for i := 0; i < setup.ImageCount; i++ {
		images = append(images, mocks.NewDummyImage(device))
	}

	platform.EXPECT().AvailableInstanceExtensions().Return(setup.InstanceExtensions, nil).MaxTimes(1)
	platform.EXPECT().AvailableInstanceLayers().Return(setup.InstanceLayers, nil).MaxTimes(1)
	platform.EXPECT().SurfaceExtensions().Return(androidSurfaceExtensions).MaxTimes(1)
	platform.EXPECT().CreateInstance(gomock.Any()).DoAndReturn(func(info vkctx.InstanceInfo) error {
		created.Instance = info
		return nil
	}).MaxTimes(1)
	platform.EXPECT().CreateDebugMessenger().Return(nil).MaxTimes(1)
	platform.EXPECT().CreateSurface().Return(nil).MaxTimes(1)
	platform.EXPECT().PhysicalDevices().Return(physicalDevices, nil).MaxTimes(1)
	platform.EXPECT().PhysicalDeviceProperties(gomock.Any()).Return(&core1_0.PhysicalDeviceProperties{
		DriverName: "Mock GPU",
		DriverType: core1_0.PhysicalDeviceTypeIntegratedGPU,
	}, nil).MaxTimes(1)
	platform.EXPECT().QueueFamilyFlags(gomock.Any()).Return(setup.QueueFamilies).MaxTimes(1)
	platform.EXPECT().MemoryTypes(gomock.Any()).Return(setup.MemoryTypes).MaxTimes(1)
	platform.EXPECT().AvailableDeviceExtensions(gomock.Any()).Return(setup.DeviceExtensions, nil).MaxTimes(1)
	platform.EXPECT().CreateDevice(gomock.Any()).DoAndReturn(func(info vkctx.DeviceInfo) (core1_0.Queue, error) {
		created.Device = info
		return core1_0.Queue{}, nil
	}).MaxTimes(1)
	platform.EXPECT().SurfaceCapabilities(gomock.Any()).Return(&setup.Capabilities, nil).MaxTimes(1)
	platform.EXPECT().SurfaceFormats(gomock.Any()).Return(setup.SurfaceFormats, nil).MaxTimes(1)
	platform.EXPECT().CreateSwapchain(gomock.Any()).DoAndReturn(func(info vkctx.SwapchainInfo) error {
		created.Swapchain = info
		return nil
	}).MaxTimes(1)
	platform.EXPECT().SwapchainImages().Return(images, nil).MaxTimes(1)
	if setup.FailingImageView > 0 {
		gomock.InOrder(
			platform.EXPECT().CreateImageView(gomock.Any(), gomock.Any()).
				Return(core1_0.ImageView{}, nil).Times(setup.FailingImageView-1),
			platform.EXPECT().CreateImageView(gomock.Any(), gomock.Any()).
				Return(core1_0.ImageView{}, errOutOfHostMemory),
		)
	} else {
		platform.EXPECT().CreateImageView(gomock.Any(), core1_0.FormatR8G8B8A8UnsignedNormalized).
			Return(core1_0.ImageView{}, nil).MaxTimes(setup.ImageCount)
	}

	return platform, created
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func readyContext(t *testing.T, ctrl *gomock.Controller, setup ContextSetup) (*mock_vkctx.MockPlatform, *CreatedObjects, *vkctx.Context) {
	platform, created := expectCreation(ctrl, setup)

	context, err := vkctx.New(testLogger(), platform, setup.Options)
	require.NoError(t, err)
	require.True(t, context.IsReady())

	return platform, created, context
}

func expectTeardown(platform *mock_vkctx.MockPlatform, imageCount int, debugMessenger bool) {
	calls := []any{
		platform.EXPECT().DestroyImageView(gomock.Any()).Times(imageCount),
		platform.EXPECT().DestroySwapchain(),
		platform.EXPECT().DestroyDevice(),
		platform.EXPECT().DestroySurface(),
	}
	if debugMessenger {
		calls = append(calls, platform.EXPECT().DestroyDebugMessenger())
	}
	calls = append(calls, platform.EXPECT().DestroyInstance())

	gomock.InOrder(calls...)
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform, created, context := readyContext(t, ctrl, defaultSetup())

	require.True(t, context.DrawFrame())

	require.Equal(t, "VULKAN", created.Instance.ApplicationName)
	require.Equal(t, "null", created.Instance.EngineName)
	require.Equal(t, common.Vulkan1_0, created.Instance.APIVersion)
	require.Equal(t, androidSurfaceExtensions, created.Instance.Extensions)
	require.Empty(t, created.Instance.Layers)
	require.False(t, created.Instance.DebugMessenger)
	require.False(t, created.Instance.EnumeratePortability)

	require.Equal(t, vkctx.DeviceInfo{
		PhysicalDevice:   created.PhysicalDevice,
		QueueFamilyIndex: 1,
		QueuePriorities:  []float32{1.0},
		Extensions:       []string{khr_swapchain.ExtensionName},
	}, created.Device)

	require.Equal(t, vkctx.SwapchainInfo{
		SurfaceFormat:    khr_surface.SurfaceFormat{Format: core1_0.FormatR8G8B8A8UnsignedNormalized},
		Extent:           core1_0.Extent2D{Width: 1080, Height: 2340},
		MinImageCount:    3,
		QueueFamilyIndex: 1,
	}, created.Swapchain)

	require.Equal(t, 1, context.QueueFamilyIndex())
	require.Equal(t, "Mock GPU", context.PhysicalDeviceProperties().DriverName)
	require.Equal(t, created.PhysicalDevice, context.PhysicalDevice())
	require.Equal(t, 3, context.SwapchainLength())
	require.Len(t, context.ImageViews(), 3)
	require.Equal(t, core1_0.Extent2D{Width: 1080, Height: 2340}, context.DisplaySize())
	require.Equal(t, core1_0.FormatR8G8B8A8UnsignedNormalized, context.DisplayFormat())
	require.Equal(t, 3, context.MemoryTypes().Len())

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())
	require.False(t, context.IsReady())
	require.False(t, context.DrawFrame())

	// Nothing is live any more, so nothing is destroyed twice
	require.NoError(t, context.Destroy())
}

func TestNew_ApplicationInfo(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultSetup()
	setup.Options.Application = vkctx.ApplicationInfo{
		Name:       "triangle",
		Version:    common.CreateVersion(2, 1, 0),
		APIVersion: common.Vulkan1_1,
	}

	platform, created, context := readyContext(t, ctrl, setup)

	require.Equal(t, "triangle", created.Instance.ApplicationName)
	require.Equal(t, common.CreateVersion(2, 1, 0), created.Instance.ApplicationVersion)
	require.Equal(t, "null", created.Instance.EngineName)
	require.Equal(t, common.Vulkan1_1, created.Instance.APIVersion)

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())
}

func TestNew_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultSetup()
	setup.Options.Flags = vkctx.ContextCreateValidation

	platform, created, context := readyContext(t, ctrl, setup)

	require.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, created.Instance.Layers)
	require.Contains(t, created.Instance.Extensions, ext_debug_utils.ExtensionName)
	require.True(t, created.Instance.DebugMessenger)

	expectTeardown(platform, 3, true)
	require.NoError(t, context.Destroy())
}

func TestNew_ValidationWithoutDebugUtils(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultSetup()
	setup.Options.Flags = vkctx.ContextCreateValidation
	setup.InstanceExtensions = androidSurfaceExtensions

	platform, created, context := readyContext(t, ctrl, setup)

	require.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, created.Instance.Layers)
	require.False(t, created.Instance.DebugMessenger)

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())
}

func TestNew_NoValidationWins(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultSetup()
	setup.Options.Flags = vkctx.ContextCreateValidation | vkctx.ContextCreateNoValidation

	platform, created, context := readyContext(t, ctrl, setup)
	require.Empty(t, created.Instance.Layers)

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())
}

func TestNew_Portability(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultSetup()
	setup.InstanceExtensions = append(setup.InstanceExtensions, khr_portability_enumeration.ExtensionName)
	setup.DeviceExtensions = append(setup.DeviceExtensions, khr_portability_subset.ExtensionName)

	platform, created, context := readyContext(t, ctrl, setup)

	require.True(t, created.Instance.EnumeratePortability)
	require.Contains(t, created.Instance.Extensions, khr_portability_enumeration.ExtensionName)
	require.Equal(t, []string{khr_swapchain.ExtensionName, khr_portability_subset.ExtensionName}, created.Device.Extensions)

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())
}

func TestNew_Failures(t *testing.T) {
	testCases := map[string]struct {
		Setup       func(setup *ContextSetup)
		ExpectedErr error
		// Destroy calls expected while releasing the partial context, in order
		Teardown func(platform *mock_vkctx.MockPlatform)
	}{
		"MissingValidationLayer": {
			Setup: func(setup *ContextSetup) {
				setup.Options.Flags = vkctx.ContextCreateValidation
				setup.InstanceLayers = []string{"VK_LAYER_LUNARG_api_dump"}
			},
			ExpectedErr: vkctx.ErrMissingLayer,
			Teardown:    func(platform *mock_vkctx.MockPlatform) {},
		},
		"MissingSurfaceExtension": {
			Setup: func(setup *ContextSetup) {
				setup.InstanceExtensions = []string{khr_surface.ExtensionName}
			},
			ExpectedErr: vkctx.ErrMissingExtension,
			Teardown:    func(platform *mock_vkctx.MockPlatform) {},
		},
		"NoPhysicalDevice": {
			Setup: func(setup *ContextSetup) {
				setup.PhysicalDevices = 0
			},
			ExpectedErr: vkctx.ErrNoPhysicalDevice,
			Teardown: func(platform *mock_vkctx.MockPlatform) {
				gomock.InOrder(
					platform.EXPECT().DestroySurface(),
					platform.EXPECT().DestroyInstance(),
				)
			},
		},
		"NoGraphicsQueueFamily": {
			Setup: func(setup *ContextSetup) {
				setup.QueueFamilies = []core1_0.QueueFlags{core1_0.QueueTransfer, core1_0.QueueCompute}
			},
			ExpectedErr: vkctx.ErrNoGraphicsQueueFamily,
			Teardown: func(platform *mock_vkctx.MockPlatform) {
				gomock.InOrder(
					platform.EXPECT().DestroySurface(),
					platform.EXPECT().DestroyInstance(),
				)
			},
		},
		"MissingSwapchainExtension": {
			Setup: func(setup *ContextSetup) {
				setup.DeviceExtensions = []string{}
			},
			ExpectedErr: vkctx.ErrMissingExtension,
			Teardown: func(platform *mock_vkctx.MockPlatform) {
				gomock.InOrder(
					platform.EXPECT().DestroySurface(),
					platform.EXPECT().DestroyInstance(),
				)
			},
		},
		"SurfaceFormatUnsupported": {
			Setup: func(setup *ContextSetup) {
				setup.SurfaceFormats = []khr_surface.SurfaceFormat{
					{Format: core1_0.FormatB8G8R8A8UnsignedNormalized},
				}
			},
			ExpectedErr: vkctx.ErrSurfaceFormatUnsupported,
			Teardown: func(platform *mock_vkctx.MockPlatform) {
				gomock.InOrder(
					platform.EXPECT().DestroyDevice(),
					platform.EXPECT().DestroySurface(),
					platform.EXPECT().DestroyInstance(),
				)
			},
		},
		"ImageViewFailure": {
			Setup: func(setup *ContextSetup) {
				setup.FailingImageView = 3
			},
			ExpectedErr: errOutOfHostMemory,
			Teardown: func(platform *mock_vkctx.MockPlatform) {
				gomock.InOrder(
					platform.EXPECT().DestroyImageView(gomock.Any()).Times(2),
					platform.EXPECT().DestroySwapchain(),
					platform.EXPECT().DestroyDevice(),
					platform.EXPECT().DestroySurface(),
					platform.EXPECT().DestroyInstance(),
				)
			},
		},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			setup := defaultSetup()
			testCase.Setup(&setup)

			platform, _ := expectCreation(ctrl, setup)
			testCase.Teardown(platform)

			context, err := vkctx.New(testLogger(), platform, setup.Options)
			require.ErrorIs(t, err, testCase.ExpectedErr)
			require.Nil(t, context)
		})
	}
}

func TestNew_SurfaceFormatOverride(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultSetup()
	setup.Options.SurfaceFormat = core1_0.FormatB8G8R8A8UnsignedNormalized

	platform, created := expectCreation(ctrl, setup)
	platform.EXPECT().CreateImageView(gomock.Any(), core1_0.FormatB8G8R8A8UnsignedNormalized).
		Return(core1_0.ImageView{}, nil).Times(3)

	context, err := vkctx.New(testLogger(), platform, setup.Options)
	require.NoError(t, err)
	require.Equal(t, core1_0.FormatB8G8R8A8UnsignedNormalized, created.Swapchain.SurfaceFormat.Format)
	require.Equal(t, core1_0.FormatB8G8R8A8UnsignedNormalized, context.DisplayFormat())

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())
}

func TestFindMemoryTypeIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform, _, context := readyContext(t, ctrl, defaultSetup())

	index, err := context.FindMemoryTypeIndex(0b110, core1_0.MemoryPropertyHostVisible)
	require.NoError(t, err)
	require.Equal(t, 2, index)

	index, err = context.FindMemoryTypeIndex(0b010, core1_0.MemoryPropertyHostVisible)
	require.ErrorIs(t, err, memtype.ErrNoSuitableMemoryType)
	require.Equal(t, -1, index)

	// Callers can retry with a weaker requirement
	index, err = context.FindMemoryTypeIndex(0b010, 0)
	require.NoError(t, err)
	require.Equal(t, 1, index)

	// Host visible and coherent beats plain host visible
	index, err = context.FindPreferredMemoryTypeIndex(0b111, core1_0.MemoryPropertyHostVisible, core1_0.MemoryPropertyHostCoherent, 0)
	require.NoError(t, err)
	require.Equal(t, 2, index)

	// Falls back to the cheapest type when nothing is a perfect fit
	index, err = context.FindPreferredMemoryTypeIndex(0b011, 0, core1_0.MemoryPropertyHostVisible, core1_0.MemoryPropertyDeviceLocal)
	require.NoError(t, err)
	require.Equal(t, 0, index)

	_, err = context.FindPreferredMemoryTypeIndex(0b010, core1_0.MemoryPropertyHostVisible, 0, 0)
	require.ErrorIs(t, err, memtype.ErrNoSuitableMemoryType)

	require.True(t, context.IsMemoryTypeHostNonCoherent(0))
	require.False(t, context.IsMemoryTypeHostNonCoherent(1))
	require.False(t, context.IsMemoryTypeHostNonCoherent(2))

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())
}

func TestFirstGraphicsQueueFamily(t *testing.T) {
	testCases := map[string]struct {
		Families      []core1_0.QueueFlags
		ExpectedIndex int
		ExpectedOk    bool
	}{
		"FirstFamily": {
			Families:      []core1_0.QueueFlags{core1_0.QueueGraphics, core1_0.QueueGraphics | core1_0.QueueCompute},
			ExpectedIndex: 0,
			ExpectedOk:    true,
		},
		"SkipsTransferOnly": {
			Families:      []core1_0.QueueFlags{core1_0.QueueTransfer, core1_0.QueueCompute, core1_0.QueueGraphics},
			ExpectedIndex: 2,
			ExpectedOk:    true,
		},
		"None": {
			Families:      []core1_0.QueueFlags{core1_0.QueueTransfer, core1_0.QueueCompute},
			ExpectedIndex: -1,
		},
		"Empty": {
			ExpectedIndex: -1,
		},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			index, ok := vkctx.FirstGraphicsQueueFamily(testCase.Families)
			require.Equal(t, testCase.ExpectedIndex, index)
			require.Equal(t, testCase.ExpectedOk, ok)
		})
	}
}
