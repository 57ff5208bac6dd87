package animation

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicateName indicates a group already holds an animation under a name.
var ErrDuplicateName = errors.New("duplicate animation name")

// Group drives a set of independent named animations together. Calls are
// fanned out in name order. A Group is not safe for concurrent use.
type Group struct {
	names []string
	anims map[string]*Animation
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{anims: make(map[string]*Animation)}
}

// Add registers an animation under name.
func (g *Group) Add(name string, a *Animation) error {
	if a == nil {
		return fmt.Errorf("%w: animation %q is nil", ErrInvalidConfig, name)
	}
	if _, ok := g.anims[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	i, _ := slices.BinarySearch(g.names, name)
	g.names = slices.Insert(g.names, i, name)
	g.anims[name] = a
	return nil
}

// Remove drops the animation registered under name, if any.
func (g *Group) Remove(name string) {
	if _, ok := g.anims[name]; !ok {
		return
	}
	delete(g.anims, name)
	if i, found := slices.BinarySearch(g.names, name); found {
		g.names = slices.Delete(g.names, i, i+1)
	}
}

// Get returns the animation registered under name.
func (g *Group) Get(name string) (*Animation, bool) {
	a, ok := g.anims[name]
	return a, ok
}

// Names returns the registered names in sorted order.
func (g *Group) Names() []string {
	return slices.Clone(g.names)
}

// Len returns the number of animations in the group.
func (g *Group) Len() int {
	return len(g.names)
}

// Start starts every animation.
func (g *Group) Start() {
	g.each((*Animation).Start)
}

// Stop stops every animation.
func (g *Group) Stop() {
	g.each((*Animation).Stop)
}

// Reset resets every animation.
func (g *Group) Reset() {
	g.each((*Animation).Reset)
}

// Update advances every animation by dt seconds.
func (g *Group) Update(dt float64) {
	for _, name := range g.names {
		g.anims[name].Update(dt)
	}
}

// Values returns the current value of every animation keyed by name.
func (g *Group) Values() map[string]Value {
	out := make(map[string]Value, len(g.names))
	for _, name := range g.names {
		out[name] = g.anims[name].Current()
	}
	return out
}

// Finished reports whether every animation has finished. An empty group
// is finished.
func (g *Group) Finished() bool {
	for _, name := range g.names {
		if !g.anims[name].Finished() {
			return false
		}
	}
	return true
}

func (g *Group) each(fn func(*Animation)) {
	for _, name := range g.names {
		fn(g.anims[name])
	}
}
