// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package light implements per-frame aggregation of
// light sources.
package light

import (
	"errors"
)

// MaxLight is the default maximum number of lights
// per frame.
const MaxLight = 16

func newErr(s string) error { return errors.New("light: " + s) }

var (
	// ErrFull means that the Manager cannot take
	// any more sources until it is cleared.
	ErrFull = newErr("too many lights")

	// ErrNilSource means that a nil Source was given.
	ErrNilSource = newErr("nil Source")
)

// Source is anything that contributes a light.
// The light model itself is defined by the Source,
// which must describe it by filling a Layout.
type Source interface {
	Light(l *Layout)
}

// Manager accumulates the light sources of a frame
// and packs them for consumption by the renderer.
// The zero value for Manager is not valid; call
// NewManager or Manager.Init.
type Manager struct {
	srcs   []Source
	packed []Layout
	max    int
}

// NewManager creates an initialized manager that
// accepts at most max sources.
// If max is less than or equal to zero, MaxLight is
// used instead.
func NewManager(max int) *Manager { return new(Manager).Init(max) }

// Init initializes m.
func (m *Manager) Init(max int) *Manager {
	if max <= 0 {
		max = MaxLight
	}
	m.max = max
	m.srcs = make([]Source, 0, max)
	m.packed = make([]Layout, 0, max)
	return m
}

// Cap returns the maximum number of sources.
func (m *Manager) Cap() int { return m.max }

// Len returns the number of sources added since the
// last call to Clear.
func (m *Manager) Len() int { return len(m.srcs) }

// Add adds src to m.
// It fails if src is nil or if m already contains
// Cap sources.
func (m *Manager) Add(src Source) error {
	switch {
	case src == nil:
		return ErrNilSource
	case len(m.srcs) >= m.max:
		return ErrFull
	}
	m.srcs = append(m.srcs, src)
	return nil
}

// Clear removes all sources and packed data from m.
func (m *Manager) Clear() {
	for i := range m.srcs {
		m.srcs[i] = nil
	}
	m.srcs = m.srcs[:0]
	m.packed = m.packed[:0]
}

// UpdateLights packs the current sources, in the
// order they were added.
// Slots past the last source, up to Cap, are marked
// as unused.
func (m *Manager) UpdateLights() {
	m.packed = m.packed[:m.max]
	for i := range m.packed {
		m.packed[i] = Layout{}
		if i < len(m.srcs) {
			m.srcs[i].Light(&m.packed[i])
			m.packed[i].SetUnused(false)
		} else {
			m.packed[i].SetUnused(true)
		}
	}
}

// Packed returns the data produced by the last call
// to UpdateLights.
// Its length is either zero (m was cleared) or Cap.
// The slice aliases m's storage and as such must not
// be mutated by the caller.
func (m *Manager) Packed() []Layout { return m.packed }
