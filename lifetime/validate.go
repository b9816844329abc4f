package lifetime

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

// Validate checks the graph's bookkeeping: every live resource's dependencies are live, were
// acquired before it, and list it as a dependent. It returns an error describing the first
// problem found.
func (g *Graph) Validate() error {
	if len(g.order) != g.nodes.Count() {
		return errors.Newf("graph orders %d resources but indexes %d", len(g.order), g.nodes.Count())
	}

	position := make(map[ID]int, len(g.order))
	for index, id := range g.order {
		if _, duplicate := position[id]; duplicate {
			return errors.Newf("resource %d appears twice in acquisition order", id)
		}
		position[id] = index
	}

	for index, id := range g.order {
		n, ok := g.nodes.Get(id)
		if !ok {
			return errors.Newf("resource %d is ordered but not indexed", id)
		}

		for _, dep := range n.deps {
			parent, live := g.nodes.Get(dep)
			if !live {
				return errors.Newf("resource %s depends on resource %d, which is not live", n.name, dep)
			}
			if position[dep] >= index {
				return errors.Newf("resource %s was acquired before its dependency %s", n.name, parent.name)
			}
			if !slices.Contains(parent.dependents, id) {
				return errors.Newf("resource %s does not list dependent %s", parent.name, n.name)
			}
		}
	}

	return nil
}
