// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package demo builds sample scenes and runs draw
// passes over them, recording what was visited.
package demo

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gviegas/stage"
	"github.com/gviegas/stage/internal/log"
	"github.com/gviegas/stage/light"
	"github.com/gviegas/stage/node"
)

var logger = log.New("demo")

// Camera is a look-at camera.
type Camera struct {
	Eye, Center, Up mgl32.Vec3

	world   mgl32.Mat4
	updates int
}

// UpdateWorldMatrix recomputes c's world transform
// from c.Eye, c.Center and c.Up.
func (c *Camera) UpdateWorldMatrix() {
	c.world = mgl32.LookAtV(c.Eye, c.Center, c.Up).Inv()
	c.updates++
}

// World returns the world transform computed by the
// last call to UpdateWorldMatrix.
func (c *Camera) World() mgl32.Mat4 { return c.world }

// Updates returns how many times UpdateWorldMatrix
// was called.
func (c *Camera) Updates() int { return c.updates }

// PointSource is a light.Source emitting in all
// directions from Position.
type PointSource struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Range     float32
}

// Light implements light.Source.
func (s *PointSource) Light(l *light.Layout) {
	l.SetType(light.Point)
	l.SetPosition(s.Position)
	l.SetColor(s.Color)
	l.SetIntensity(s.Intensity)
	l.SetRange(s.Range)
}

// DistantSource is a light.Source emitting in
// Direction from infinitely far away.
type DistantSource struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Light implements light.Source.
func (s *DistantSource) Light(l *light.Layout) {
	l.SetType(light.Distant)
	l.SetDirection(s.Direction.Normalize())
	l.SetColor(s.Color)
	l.SetIntensity(s.Intensity)
}

// Recorder counts the calls made on the groups of
// a scene created by Build.
type Recorder struct {
	Drawn3    int
	Drawn2    int
	Traversed int
}

// Reset zeroes all counters.
func (r *Recorder) Reset() { *r = Recorder{} }

func (r *Recorder) group3(name string) *node.Group3 {
	g := node.NewGroup3(name)
	g.OnDraw = func(node.Node3, node.Camera, *light.Manager) { r.Drawn3++ }
	g.OnTraverse = func() { r.Traversed++ }
	return g
}

func (r *Recorder) group2(name string) *node.Group2 {
	g := node.NewGroup2(name)
	g.OnDraw = func() { r.Drawn2++ }
	g.OnTraverse = func() { r.Traversed++ }
	return g
}

// Build creates a sample scene whose groups report
// to rec.
// The 3D graph has five groups and three light
// sources; the 2D graph has four groups.
func Build(rec *Recorder, config *stage.Config) *stage.Scene {
	s := stage.NewConfig(config)

	terrain := rec.group3("terrain")
	terrain.Add(rec.group3("rock"))
	terrain.Add(rec.group3("tree"))
	s.Add3(terrain)

	lamp := rec.group3("lamp")
	lamp.Sources = []light.Source{
		&PointSource{Position: mgl32.Vec3{-2, 3, 0}, Color: mgl32.Vec3{1, 0.8, 0.6}, Intensity: 40, Range: 10},
		&PointSource{Position: mgl32.Vec3{2, 3, 0}, Color: mgl32.Vec3{1, 0.8, 0.6}, Intensity: 40, Range: 10},
	}
	s.Add(stage.Child3{Node: lamp})

	sun := rec.group3("sun")
	sun.Sources = []light.Source{
		&DistantSource{Direction: mgl32.Vec3{1, -4, 1}, Color: mgl32.Vec3{1, 1, 1}, Intensity: 1000},
	}
	s.Add3(sun)

	hud := rec.group2("hud")
	hud.Add(rec.group2("health"))
	hud.Add(rec.group2("score"))
	s.Add2(hud)
	s.Add(stage.Child2{Node: rec.group2("cursor")})

	return s
}

// FrameStats describes one frame produced by Run.
type FrameStats struct {
	Frame     int
	Traversed int
	Drawn3    int
	Drawn2    int
	Lights    int
	Time      time.Duration
}

// Run traverses and draws s n times.
// rec must be the Recorder given to Build.
func Run(s *stage.Scene, cam node.Camera, rec *Recorder, n int) []FrameStats {
	stats := make([]FrameStats, 0, n)
	for i := 0; i < n; i++ {
		rec.Reset()
		start := time.Now()
		s.TraverseSceneGraph()
		s.Draw(cam)
		stats = append(stats, FrameStats{
			Frame:     i,
			Traversed: rec.Traversed,
			Drawn3:    rec.Drawn3,
			Drawn2:    rec.Drawn2,
			Lights:    s.NumLights(),
			Time:      time.Since(start),
		})
	}
	logger.Infof("ran %d frames", n)
	return stats
}

func name3(n node.Node3) string {
	if g, ok := n.(*node.Group3); ok {
		return g.Name
	}
	return fmt.Sprintf("%T", n)
}

func name2(n node.Node2) string {
	if g, ok := n.(*node.Group2); ok {
		return g.Name
	}
	return fmt.Sprintf("%T", n)
}
