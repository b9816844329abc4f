package vkctx_test

import (
	"encoding/binary"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/vkcontext/shader"
	"github.com/vkngwrapper/vkcontext/vkctx"
	"go.uber.org/mock/gomock"
)

func TestCreateFramebuffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform, _, context := readyContext(t, ctrl, defaultSetup())

	var created []vkctx.FramebufferInfo
	platform.EXPECT().CreateFramebuffer(gomock.Any()).DoAndReturn(func(info vkctx.FramebufferInfo) (core1_0.Framebuffer, error) {
		created = append(created, info)
		return core1_0.Framebuffer{}, nil
	}).Times(6)

	framebuffers, err := context.CreateFramebuffers(core1_0.RenderPass{}, nil)
	require.NoError(t, err)
	require.Len(t, framebuffers, 3)
	require.Len(t, created, 3)
	for _, info := range created {
		require.Len(t, info.Attachments, 1)
		require.Equal(t, core1_0.Extent2D{Width: 1080, Height: 2340}, info.Extent)
	}

	// A second set replaces the first
	platform.EXPECT().DestroyFramebuffer(gomock.Any()).Times(3)

	depthView := core1_0.ImageView{}
	framebuffers, err = context.CreateFramebuffers(core1_0.RenderPass{}, &depthView)
	require.NoError(t, err)
	require.Len(t, framebuffers, 3)
	require.Len(t, context.Framebuffers(), 3)
	for _, info := range created[3:] {
		require.Len(t, info.Attachments, 2)
	}

	gomock.InOrder(
		platform.EXPECT().DestroyFramebuffer(gomock.Any()).Times(3),
		platform.EXPECT().DestroyImageView(gomock.Any()).Times(3),
		platform.EXPECT().DestroySwapchain(),
		platform.EXPECT().DestroyDevice(),
		platform.EXPECT().DestroySurface(),
		platform.EXPECT().DestroyInstance(),
	)
	require.NoError(t, context.Destroy())

	_, err = context.CreateFramebuffers(core1_0.RenderPass{}, nil)
	require.ErrorIs(t, err, vkctx.ErrNotReady)
}

func TestCreateFramebuffers_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform, _, context := readyContext(t, ctrl, defaultSetup())

	gomock.InOrder(
		platform.EXPECT().CreateFramebuffer(gomock.Any()).Return(core1_0.Framebuffer{}, nil).Times(2),
		platform.EXPECT().CreateFramebuffer(gomock.Any()).Return(core1_0.Framebuffer{}, errors.New("out of device memory")),
	)
	// The two framebuffers that were created are released again
	platform.EXPECT().DestroyFramebuffer(gomock.Any()).Times(2)

	framebuffers, err := context.CreateFramebuffers(core1_0.RenderPass{}, nil)
	require.Error(t, err)
	require.Nil(t, framebuffers)
	require.Empty(t, context.Framebuffers())

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())
}

func TestLoadShaderModule(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform, _, context := readyContext(t, ctrl, defaultSetup())

	code := []uint32{shader.Magic, 0x00010000, 0, 5, 0}
	data := make([]byte, 4*len(code))
	for i, word := range code {
		binary.LittleEndian.PutUint32(data[i*4:], word)
	}
	assets := fstest.MapFS{
		"shaders/triangle.vert.spv": {Data: data},
		"shaders/triangle.vert":     {Data: []byte("#version 450\n\n\n\n")},
	}

	platform.EXPECT().CreateShaderModule(code).Return(core1_0.ShaderModule{}, nil)

	_, err := context.LoadShaderModule(assets, "shaders/triangle.vert.spv")
	require.NoError(t, err)

	_, err = context.LoadShaderModule(assets, "shaders/triangle.vert")
	require.ErrorIs(t, err, shader.ErrInvalidSPIRV)

	// Shader modules go before the device they were created on
	gomock.InOrder(
		platform.EXPECT().DestroyShaderModule(gomock.Any()),
		platform.EXPECT().DestroyImageView(gomock.Any()).Times(3),
		platform.EXPECT().DestroySwapchain(),
		platform.EXPECT().DestroyDevice(),
		platform.EXPECT().DestroySurface(),
		platform.EXPECT().DestroyInstance(),
	)
	require.NoError(t, context.Destroy())

	_, err = context.LoadShaderModule(assets, "shaders/triangle.vert.spv")
	require.ErrorIs(t, err, vkctx.ErrNotReady)
}

func TestBuildStatsString(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform, _, context := readyContext(t, ctrl, defaultSetup())

	var stats struct {
		Ready          bool
		Validation     bool
		DebugMessenger bool
		PhysicalDevice struct {
			Name             string
			QueueFamilyIndex int
		}
		MemoryTypes []struct {
			Index int
			Flags string
		}
		Swapchain struct {
			Width            int
			Height           int
			ImageCount       int
			FramebufferCount int
		}
		Resources []string
	}
	require.NoError(t, json.Unmarshal([]byte(context.BuildStatsString()), &stats))

	require.True(t, stats.Ready)
	require.False(t, stats.Validation)
	require.Equal(t, "Mock GPU", stats.PhysicalDevice.Name)
	require.Equal(t, 1, stats.PhysicalDevice.QueueFamilyIndex)
	require.Len(t, stats.MemoryTypes, 3)
	require.Equal(t, 2, stats.MemoryTypes[2].Index)
	require.Equal(t, 1080, stats.Swapchain.Width)
	require.Equal(t, 2340, stats.Swapchain.Height)
	require.Equal(t, 3, stats.Swapchain.ImageCount)
	require.Zero(t, stats.Swapchain.FramebufferCount)
	require.Equal(t, []string{
		"instance",
		"surface",
		"device",
		"swapchain",
		"image view 0",
		"image view 1",
		"image view 2",
	}, stats.Resources)

	expectTeardown(platform, 3, false)
	require.NoError(t, context.Destroy())

	require.NoError(t, json.Unmarshal([]byte(context.BuildStatsString()), &stats))
	require.False(t, stats.Ready)
	require.Empty(t, stats.Resources)
}
