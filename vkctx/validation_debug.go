//go:build vkdebug

package vkctx

// validationDefault turns the validation layers on unless a context is created with
// ContextCreateNoValidation. Build with the vkdebug tag to get this behavior.
const validationDefault = true
