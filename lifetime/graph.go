package lifetime

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// ID identifies a resource acquired through a Graph
type ID uint64

// DestroyFunc releases a single resource
type DestroyFunc func() error

type node struct {
	id         ID
	name       string
	destroy    DestroyFunc
	deps       []ID
	dependents []ID
}

// Graph records every live resource together with the resources it was created from. Teardown
// order is derived from these records: a resource is always released before anything it
// depends on.
//
// Graph is not safe for concurrent use.
type Graph struct {
	logger *slog.Logger
	nodes  *swiss.Map[ID, *node]
	// Live IDs in acquisition order. Dependencies must be live when a resource is acquired,
	// so this is always a valid creation order.
	order  []ID
	nextID ID
}

// NewGraph creates an empty Graph
func NewGraph(logger *slog.Logger) *Graph {
	return &Graph{
		logger: logger,
		nodes:  swiss.NewMap[ID, *node](16),
		nextID: 1,
	}
}

// Acquire records a newly-created resource. destroy is called exactly once, when the resource
// or one of its dependencies is released. Every ID in deps must refer to a live resource.
func (g *Graph) Acquire(name string, destroy DestroyFunc, deps ...ID) (ID, error) {
	if destroy == nil {
		return 0, errors.Newf("resource %s was acquired without a destroy function", name)
	}

	for _, dep := range deps {
		if !g.nodes.Has(dep) {
			return 0, errors.Newf("resource %s depends on resource %d, which is not live", name, dep)
		}
	}

	id := g.nextID
	g.nextID++

	n := &node{
		id:      id,
		name:    name,
		destroy: destroy,
		deps:    slices.Clone(deps),
	}
	for _, dep := range deps {
		parent, _ := g.nodes.Get(dep)
		parent.dependents = append(parent.dependents, id)
	}

	g.nodes.Put(id, n)
	g.order = append(g.order, id)
	debugValidate(g)

	g.logger.Debug("Graph::Acquire", slog.String("resource", name), slog.Uint64("id", uint64(id)))
	return id, nil
}

// IsLive returns true if the resource has been acquired and not yet released
func (g *Graph) IsLive(id ID) bool {
	return g.nodes.Has(id)
}

// Len returns the number of live resources
func (g *Graph) Len() int {
	return g.nodes.Count()
}

// Names returns the names of the live resources in acquisition order
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.order))
	for _, id := range g.order {
		n, _ := g.nodes.Get(id)
		names = append(names, n.name)
	}
	return names
}

// Release destroys a resource along with every resource that depends on it, directly or
// transitively. Dependents are destroyed first, most recently acquired first. Releasing an
// ID that is not live is a no-op.
func (g *Graph) Release(id ID) error {
	if !g.nodes.Has(id) {
		return nil
	}

	doomed := map[ID]struct{}{}
	pending := []ID{id}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if _, seen := doomed[current]; seen {
			continue
		}
		doomed[current] = struct{}{}

		n, _ := g.nodes.Get(current)
		pending = append(pending, n.dependents...)
	}

	return g.releaseMatching(func(id ID) bool {
		_, isDoomed := doomed[id]
		return isDoomed
	})
}

// ReleaseAll destroys every live resource, dependents before their dependencies. A failing
// destroy function does not stop the teardown; all failures are combined into the returned error.
func (g *Graph) ReleaseAll() error {
	return g.releaseMatching(func(ID) bool { return true })
}

func (g *Graph) releaseMatching(match func(id ID) bool) error {
	var err error
	remaining := make([]ID, 0, len(g.order))

	for i := len(g.order) - 1; i >= 0; i-- {
		id := g.order[i]
		if !match(id) {
			remaining = append(remaining, id)
			continue
		}

		err = errors.CombineErrors(err, g.destroyNode(id))
	}

	slices.Reverse(remaining)
	g.order = remaining
	debugValidate(g)

	return err
}

func (g *Graph) destroyNode(id ID) error {
	n, _ := g.nodes.Get(id)
	for _, dependent := range n.dependents {
		if g.nodes.Has(dependent) {
			// Acquisition order rules this out
			panic(errors.AssertionFailedf("resource %s was released while dependent %d is still live", n.name, dependent))
		}
	}

	for _, dep := range n.deps {
		parent, ok := g.nodes.Get(dep)
		if ok {
			parent.dependents = slices.DeleteFunc(parent.dependents, func(d ID) bool { return d == id })
		}
	}
	g.nodes.Delete(id)

	g.logger.Debug("Graph::Release", slog.String("resource", n.name), slog.Uint64("id", uint64(id)))

	err := n.destroy()
	if err != nil {
		return errors.Wrapf(err, "failed to destroy %s", n.name)
	}
	return nil
}
