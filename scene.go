// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package stage provides the scene container: a 3D
// graph, a 2D graph and the aggregation of the
// scene's lights, drawn once per frame.
package stage

import (
	"github.com/gviegas/stage/internal/log"
	"github.com/gviegas/stage/light"
	"github.com/gviegas/stage/node"
)

var logger = log.New("stage")

// Scene composes the 3D and 2D graphs of a frame.
// The zero value for Scene is not valid; call New,
// NewConfig or Scene.Init.
// A Scene must not be changed while it is being
// drawn or traversed.
type Scene struct {
	root3d *node.Group3
	root2d *node.Group2
	lights *light.Manager
}

// New creates a scene using the current
// configuration (see Configure).
func New() *Scene { return new(Scene).Init(&cfg) }

// NewConfig creates a scene using config rather
// than the current configuration.
func NewConfig(config *Config) *Scene { return new(Scene).Init(config) }

// Init initializes s.
func (s *Scene) Init(config *Config) *Scene {
	s.root3d = node.NewGroup3("root3d")
	s.root2d = node.NewGroup2("root2d")
	s.lights = light.NewManager(config.MaxLight)
	return s
}

// Root3 returns the root of the 3D graph.
func (s *Scene) Root3() *node.Group3 { return s.root3d }

// Root2 returns the root of the 2D graph.
func (s *Scene) Root2() *node.Group2 { return s.root2d }

// NumLights returns how many lights the last call
// to Draw gathered.
func (s *Scene) NumLights() int { return s.lights.Len() }

// MaxLight returns the maximum number of lights the
// scene gathers per draw pass.
func (s *Scene) MaxLight() int { return s.lights.Cap() }

// PackedLights returns a copy of the lights packed
// by the last call to Draw.
func (s *Scene) PackedLights() []light.Layout {
	return append([]light.Layout(nil), s.lights.Packed()...)
}

// Add inserts child as an immediate descendant of
// the root of the graph that matches its kind.
// It does not check for duplicates or cycles.
func (s *Scene) Add(child Child) {
	switch c := child.(type) {
	case Child3:
		s.root3d.Add(c.Node)
	default:
		s.root2d.Add(c.(Child2).Node)
	}
}

// Add3 is shorthand for s.Add(Child3{n}).
func (s *Scene) Add3(n node.Node3) { s.Add(Child3{n}) }

// Add2 is shorthand for s.Add(Child2{n}).
func (s *Scene) Add2(n node.Node2) { s.Add(Child2{n}) }

// Draw performs a draw pass.
// It updates cam's world transform, gathers and
// packs the lights of the 3D graph, then draws the
// children of the 3D root followed by the children
// of the 2D root, in insertion order.
func (s *Scene) Draw(cam node.Camera) {
	cam.UpdateWorldMatrix()

	s.lights.Clear()
	s.root3d.SetLights(s.lights)
	s.lights.UpdateLights()

	subs3 := s.root3d.Children()
	for _, sub := range subs3 {
		sub.Draw(s.root3d, cam, s.lights)
	}
	subs2 := s.root2d.Children()
	for _, sub := range subs2 {
		sub.Draw()
	}
	logger.Debugf("draw: %d 3D, %d 2D, %d/%d lights", len(subs3), len(subs2), s.lights.Len(), s.lights.Cap())
}

// TraverseSceneGraph calls TraverseSceneGraph on
// the children of the 3D root and then on the
// children of the 2D root.
func (s *Scene) TraverseSceneGraph() {
	for _, sub := range s.root3d.Children() {
		sub.TraverseSceneGraph()
	}
	for _, sub := range s.root2d.Children() {
		sub.TraverseSceneGraph()
	}
}
