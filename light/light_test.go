// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package light

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// point is a Source for testing.
type point struct {
	pos mgl32.Vec3
	i   float32
}

func (p *point) Light(l *Layout) {
	l.SetType(Point)
	l.SetPosition(p.pos)
	l.SetIntensity(p.i)
	l.SetColor(mgl32.Vec3{1, 1, 1})
}

func TestNewManager(t *testing.T) {
	if n := NewManager(0).Cap(); n != MaxLight {
		t.Fatalf("NewManager(0).Cap\nhave %d\nwant %d", n, MaxLight)
	}
	if n := NewManager(-4).Cap(); n != MaxLight {
		t.Fatalf("NewManager(-4).Cap\nhave %d\nwant %d", n, MaxLight)
	}
	m := NewManager(3)
	if n := m.Cap(); n != 3 {
		t.Fatalf("NewManager(3).Cap\nhave %d\nwant 3", n)
	}
	if n := m.Len(); n != 0 {
		t.Fatalf("NewManager(3).Len\nhave %d\nwant 0", n)
	}
	if n := len(m.Packed()); n != 0 {
		t.Fatalf("len(NewManager(3).Packed())\nhave %d\nwant 0", n)
	}
}

func TestAdd(t *testing.T) {
	m := NewManager(2)
	if err := m.Add(nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("Manager.Add(nil)\nhave %v\nwant %v", err, ErrNilSource)
	}
	for i := 0; i < 2; i++ {
		if err := m.Add(&point{}); err != nil {
			t.Fatalf("Manager.Add\nhave %v\nwant nil", err)
		}
	}
	if err := m.Add(&point{}); !errors.Is(err, ErrFull) {
		t.Fatalf("Manager.Add (full)\nhave %v\nwant %v", err, ErrFull)
	}
	if n := m.Len(); n != 2 {
		t.Fatalf("Manager.Len\nhave %d\nwant 2", n)
	}
	m.Clear()
	if n := m.Len(); n != 0 {
		t.Fatalf("Manager.Len after Clear\nhave %d\nwant 0", n)
	}
	if err := m.Add(&point{}); err != nil {
		t.Fatalf("Manager.Add after Clear\nhave %v\nwant nil", err)
	}
}

func TestUpdateLights(t *testing.T) {
	m := NewManager(4)
	srcs := []*point{
		{pos: mgl32.Vec3{1, 2, 3}, i: 10},
		{pos: mgl32.Vec3{-1, 0, 5}, i: 20},
	}
	for _, s := range srcs {
		if err := m.Add(s); err != nil {
			t.Fatal(err)
		}
	}
	m.UpdateLights()
	p := m.Packed()
	if len(p) != m.Cap() {
		t.Fatalf("len(Manager.Packed())\nhave %d\nwant %d", len(p), m.Cap())
	}
	for i, s := range srcs {
		if p[i].Unused() {
			t.Fatalf("Packed()[%d].Unused\nhave true\nwant false", i)
		}
		if x := p[i].Type(); x != Point {
			t.Fatalf("Packed()[%d].Type\nhave %d\nwant %d", i, x, Point)
		}
		if x := p[i].Position(); x != s.pos {
			t.Fatalf("Packed()[%d].Position\nhave %v\nwant %v", i, x, s.pos)
		}
		if x := p[i].Intensity(); x != s.i {
			t.Fatalf("Packed()[%d].Intensity\nhave %v\nwant %v", i, x, s.i)
		}
	}
	for i := len(srcs); i < len(p); i++ {
		if !p[i].Unused() {
			t.Fatalf("Packed()[%d].Unused\nhave false\nwant true", i)
		}
	}

	// Stale data must not survive a repack.
	m.Clear()
	if err := m.Add(srcs[1]); err != nil {
		t.Fatal(err)
	}
	m.UpdateLights()
	p = m.Packed()
	if x := p[0].Position(); x != srcs[1].pos {
		t.Fatalf("Packed()[0].Position\nhave %v\nwant %v", x, srcs[1].pos)
	}
	if !p[1].Unused() || p[1].Intensity() != 0 {
		t.Fatalf("Packed()[1]\nhave %v\nwant unused, zeroed", p[1])
	}
}

func TestLayout(t *testing.T) {
	var l Layout
	l.SetType(Spot)
	l.SetIntensity(100)
	l.SetRange(5)
	l.SetColor(mgl32.Vec3{0.5, 0.25, 1})
	l.SetAngScale(2)
	l.SetPosition(mgl32.Vec3{1, 2, 3})
	l.SetAngOffset(-1)
	l.SetDirection(mgl32.Vec3{0, -1, 0})
	want := Layout{0, l[1], 100, 5, 0.5, 0.25, 1, 2, 1, 2, 3, -1, 0, -1, 0, 0}
	if l != want {
		t.Fatalf("Layout\nhave %v\nwant %v", l, want)
	}
	if x := l.Type(); x != Spot {
		t.Fatalf("Layout.Type\nhave %d\nwant %d", x, Spot)
	}
	if l.Unused() {
		t.Fatal("Layout.Unused\nhave true\nwant false")
	}
	l.SetUnused(true)
	if !l.Unused() {
		t.Fatal("Layout.Unused\nhave false\nwant true")
	}
	if x := l.Color(); x != (mgl32.Vec3{0.5, 0.25, 1}) {
		t.Fatalf("Layout.Color\nhave %v\nwant [0.5 0.25 1]", x)
	}
	if x := l.Direction(); x != (mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("Layout.Direction\nhave %v\nwant [0 -1 0]", x)
	}
	if l.Range() != 5 || l.AngScale() != 2 || l.AngOffset() != -1 {
		t.Fatalf("Layout.Range/AngScale/AngOffset\nhave %v %v %v\nwant 5 2 -1", l.Range(), l.AngScale(), l.AngOffset())
	}
}
