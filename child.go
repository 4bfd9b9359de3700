// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package stage

import (
	"github.com/gviegas/stage/node"
)

// Child is a node to be added to a Scene.
// It is either a Child3 or a Child2.
type Child interface {
	child()
}

// Child3 wraps a 3D node.
type Child3 struct{ Node node.Node3 }

// Child2 wraps a 2D node.
type Child2 struct{ Node node.Node2 }

func (Child3) child() {}
func (Child2) child() {}
