// Copyright 2026 The MLX-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tree provides the nested parameter containers shared by
// models and optimizers in mlx-go.
//
// A Tree is a leaf (one array), a node (string-keyed children), or a
// list (ordered children). Traversal is deterministic: node children
// in sorted key order, list children by index. Dotted paths address
// subtrees, with decimal segments indexing lists ("layers.0.weight").
//
// Example:
//
//	w, _ := array.Zeros(array.Shape{4, 4})
//	b, _ := array.Zeros(array.Shape{4})
//	params := tree.Node(map[string]*tree.Tree{
//	    "weight": tree.Leaf(w),
//	    "bias":   tree.Leaf(b),
//	})
//
//	sub, err := params.At("weight")
package tree

import (
	"github.com/MLXPorts/mlx-go/internal/array"
	"github.com/MLXPorts/mlx-go/internal/tree"
)

// Tree is an immutable nested container of arrays.
type Tree = tree.Tree

// Kind discriminates leaves, nodes, and lists.
type Kind = tree.Kind

// Kind constants.
const (
	KindLeaf Kind = tree.KindLeaf
	KindNode Kind = tree.KindNode
	KindList Kind = tree.KindList
)

// PathLeaf pairs a leaf array with its dotted path.
type PathLeaf = tree.PathLeaf

// Leaf wraps a single array as a tree.
func Leaf(a *array.Array) *Tree {
	return tree.Leaf(a)
}

// Node builds a tree from named children.
func Node(children map[string]*Tree) *Tree {
	return tree.Node(children)
}

// List builds a tree from ordered children.
func List(children []*Tree) *Tree {
	return tree.List(children)
}

// Unflatten rebuilds a tree from flattened path/leaf pairs, inverting
// Tree.Flatten.
func Unflatten(flat []PathLeaf) (*Tree, error) {
	return tree.Unflatten(flat)
}
