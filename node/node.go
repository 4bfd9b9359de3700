// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package node defines the elements of the scene's
// 3D and 2D graphs.
package node

import (
	"github.com/gviegas/stage/internal/log"
	"github.com/gviegas/stage/light"
)

var logger = log.New("node")

// Camera is the viewpoint of a draw pass.
type Camera interface {
	// UpdateWorldMatrix recomputes the world
	// transform of the camera.
	UpdateWorldMatrix()
}

// Node3 is a node in a 3D graph.
// Each node owns an ordered list of immediate
// descendants; it does not refer to its ancestor.
type Node3 interface {
	// Add appends sub to the node's children.
	Add(sub Node3)

	// Children returns the immediate descendants
	// in insertion order.
	Children() []Node3

	// Draw renders the node and its descendants.
	// parent is the node's immediate ancestor in the
	// current pass.
	Draw(parent Node3, cam Camera, lights *light.Manager)

	// SetLights adds the node's light contribution,
	// and that of its descendants, to lights.
	SetLights(lights *light.Manager)

	// TraverseSceneGraph visits the node and its
	// descendants.
	TraverseSceneGraph()
}

// Node2 is a node in a 2D graph.
// 2D nodes are drawn without camera or lights.
type Node2 interface {
	Add(sub Node2)
	Children() []Node2
	Draw()
	TraverseSceneGraph()
}

type container[N any] interface {
	Children() []N
}

// walk calls f for each descendant of n.
// Ancestors are processed first.
func walk[N container[N]](n N, f func(N) bool) {
	que := [][]N{n.Children()}
	for len(que) > 0 {
		for _, nd := range que[0] {
			if !f(nd) {
				return
			}
			if sub := nd.Children(); len(sub) > 0 {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// Walk3 calls f for each descendant of node n.
// Ancestors are processed first.
// The graph must not be changed until this function
// returns.
func Walk3(n Node3, f func(Node3)) {
	walk(n, func(n Node3) bool { f(n); return true })
}

// Until3 is like Walk3 but returns as soon as f
// returns false.
func Until3(n Node3, f func(Node3) bool) { walk(n, f) }

// Walk2 calls f for each descendant of node n.
// Ancestors are processed first.
// The graph must not be changed until this function
// returns.
func Walk2(n Node2, f func(Node2)) {
	walk(n, func(n Node2) bool { f(n); return true })
}

// Until2 is like Walk2 but returns as soon as f
// returns false.
func Until2(n Node2, f func(Node2) bool) { walk(n, f) }
