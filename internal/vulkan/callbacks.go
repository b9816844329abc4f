package vulkan

import (
	"context"

	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"golang.org/x/exp/slog"
)

// DebugMessageSeverities are the severities the debug messenger subscribes to
const DebugMessageSeverities = ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning |
	ext_debug_utils.SeverityInfo | ext_debug_utils.SeverityVerbose

// DebugMessageTypes are the message types the debug messenger subscribes to
const DebugMessageTypes = ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance

// SeverityLevel maps a debug message severity onto a log level. Verbose driver chatter is logged
// below slog.LevelDebug so that it only shows up when asked for.
func SeverityLevel(severity ext_debug_utils.DebugUtilsMessageSeverityFlags) slog.Level {
	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		return slog.LevelError
	case severity&ext_debug_utils.SeverityWarning != 0:
		return slog.LevelWarn
	case severity&ext_debug_utils.SeverityInfo != 0:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}

// DebugCallbacks forwards debug messenger messages to a logger
type DebugCallbacks struct {
	Logger *slog.Logger
}

// Message is registered as the debug messenger's user callback. It never asks the driver to
// abort the call that triggered the message.
func (c *DebugCallbacks) Message(
	msgType ext_debug_utils.DebugUtilsMessageTypeFlags,
	severity ext_debug_utils.DebugUtilsMessageSeverityFlags,
	data *ext_debug_utils.DebugUtilsMessengerCallbackData,
) bool {
	level := SeverityLevel(severity)
	if data == nil || !c.Logger.Enabled(context.Background(), level) {
		return false
	}

	c.Logger.LogAttrs(context.Background(), level, data.Message,
		slog.String("type", msgType.String()),
		slog.String("messageID", data.MessageIDName),
	)
	return false
}

func (c *DebugCallbacks) createInfo() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: DebugMessageSeverities,
		MessageType:     DebugMessageTypes,
		UserCallback:    c.Message,
	}
}
