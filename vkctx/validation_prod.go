//go:build !vkdebug

package vkctx

// validationDefault leaves the validation layers off unless a context is created with
// ContextCreateValidation. Build with the vkdebug tag to turn them on by default.
const validationDefault = false
