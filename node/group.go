// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package node

import (
	"github.com/gviegas/stage/light"
)

// Group3 is a Node3 that holds other nodes and,
// optionally, light sources.
// The zero value for Group3 is an empty group.
type Group3 struct {
	subs []Node3

	// Name for the group.
	// It is not used by node code.
	Name string

	// Sources are added to the light manager when
	// SetLights is called, before descendants.
	Sources []light.Source

	// OnDraw, if not nil, is called by Draw before
	// the children are drawn.
	OnDraw func(parent Node3, cam Camera, lights *light.Manager)

	// OnTraverse, if not nil, is called by
	// TraverseSceneGraph before the children are
	// traversed.
	OnTraverse func()
}

// NewGroup3 creates an empty, named group.
func NewGroup3(name string) *Group3 { return &Group3{Name: name} }

// Add appends sub to g's children.
// It does not check for duplicates or cycles.
func (g *Group3) Add(sub Node3) { g.subs = append(g.subs, sub) }

// Children returns g's immediate descendants.
// The slice aliases g's storage and as such must
// not be mutated by the caller.
func (g *Group3) Children() []Node3 { return g.subs }

// Draw calls g.OnDraw and then draws every child
// with g as parent.
func (g *Group3) Draw(parent Node3, cam Camera, lights *light.Manager) {
	if g.OnDraw != nil {
		g.OnDraw(parent, cam, lights)
	}
	for _, sub := range g.subs {
		sub.Draw(g, cam, lights)
	}
}

// SetLights adds g.Sources to lights and then
// recurses into g's children.
// Sources that lights rejects are logged and
// skipped.
func (g *Group3) SetLights(lights *light.Manager) {
	for _, src := range g.Sources {
		if err := lights.Add(src); err != nil {
			logger.Warningf("group %q: %v", g.Name, err)
		}
	}
	for _, sub := range g.subs {
		sub.SetLights(lights)
	}
}

// TraverseSceneGraph calls g.OnTraverse and then
// recurses into g's children.
func (g *Group3) TraverseSceneGraph() {
	if g.OnTraverse != nil {
		g.OnTraverse()
	}
	for _, sub := range g.subs {
		sub.TraverseSceneGraph()
	}
}

// Group2 is a Node2 that holds other nodes.
// The zero value for Group2 is an empty group.
type Group2 struct {
	subs []Node2

	// Name for the group.
	// It is not used by node code.
	Name string

	// OnDraw, if not nil, is called by Draw before
	// the children are drawn.
	OnDraw func()

	// OnTraverse, if not nil, is called by
	// TraverseSceneGraph before the children are
	// traversed.
	OnTraverse func()
}

// NewGroup2 creates an empty, named group.
func NewGroup2(name string) *Group2 { return &Group2{Name: name} }

// Add appends sub to g's children.
// It does not check for duplicates or cycles.
func (g *Group2) Add(sub Node2) { g.subs = append(g.subs, sub) }

// Children returns g's immediate descendants.
// The slice aliases g's storage and as such must
// not be mutated by the caller.
func (g *Group2) Children() []Node2 { return g.subs }

// Draw calls g.OnDraw and then draws every child.
func (g *Group2) Draw() {
	if g.OnDraw != nil {
		g.OnDraw()
	}
	for _, sub := range g.subs {
		sub.Draw()
	}
}

// TraverseSceneGraph calls g.OnTraverse and then
// recurses into g's children.
func (g *Group2) TraverseSceneGraph() {
	if g.OnTraverse != nil {
		g.OnTraverse()
	}
	for _, sub := range g.subs {
		sub.TraverseSceneGraph()
	}
}
