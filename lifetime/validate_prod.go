//go:build !vkdebug

package lifetime

// debugValidate calls Validate and panics if it returns an error. It no-ops unless the vkdebug
// build tag is present.
func debugValidate(g *Graph) {}
