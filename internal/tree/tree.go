// Package tree implements the nested parameter containers used by the
// optimizers in mlx-go.
//
// A Tree is either a single array (leaf), a string-keyed map of
// subtrees (node), or an ordered list of subtrees. Model parameters,
// gradients, and optimizer state all share this shape, so the three
// can be walked in lockstep.
//
// Traversal order is deterministic: node children are visited in
// sorted key order and list children in index order. Paths are dotted,
// with decimal segments addressing list positions ("layers.0.weight").
package tree

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/array"
)

// Kind discriminates the three tree shapes.
type Kind int

const (
	KindLeaf Kind = iota
	KindNode
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindNode:
		return "node"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Tree is an immutable nested container of arrays.
//
// Build one from the constructors Leaf, Node, and List. The zero value
// is not useful.
type Tree struct {
	kind Kind
	leaf *array.Array
	node map[string]*Tree
	list []*Tree
}

// Leaf wraps a single array as a tree.
func Leaf(a *array.Array) *Tree {
	return &Tree{kind: KindLeaf, leaf: a}
}

// Node builds a tree from named children. The map is copied; nil
// children are dropped.
func Node(children map[string]*Tree) *Tree {
	node := make(map[string]*Tree, len(children))
	for key, child := range children {
		if child != nil {
			node[key] = child
		}
	}
	return &Tree{kind: KindNode, node: node}
}

// List builds a tree from ordered children. The slice is copied.
func List(children []*Tree) *Tree {
	list := make([]*Tree, len(children))
	copy(list, children)
	return &Tree{kind: KindList, list: list}
}

// Kind reports whether the tree is a leaf, node, or list.
func (t *Tree) Kind() Kind { return t.kind }

// IsLeaf reports whether the tree holds a single array.
func (t *Tree) IsLeaf() bool { return t.kind == KindLeaf }

// IsNode reports whether the tree is a string-keyed map.
func (t *Tree) IsNode() bool { return t.kind == KindNode }

// IsList reports whether the tree is an ordered list.
func (t *Tree) IsList() bool { return t.kind == KindList }

// Value returns the leaf array, or nil for nodes and lists.
func (t *Tree) Value() *array.Array {
	if t.kind != KindLeaf {
		return nil
	}
	return t.leaf
}

// Keys returns the sorted child keys of a node. Nil for other kinds.
func (t *Tree) Keys() []string {
	if t.kind != KindNode {
		return nil
	}
	keys := make([]string, 0, len(t.node))
	for key := range t.node {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Child returns the named child of a node, or nil if absent or the
// tree is not a node.
func (t *Tree) Child(key string) *Tree {
	if t.kind != KindNode {
		return nil
	}
	return t.node[key]
}

// Len returns the child count: list length, node size, 1 for a leaf.
func (t *Tree) Len() int {
	switch t.kind {
	case KindNode:
		return len(t.node)
	case KindList:
		return len(t.list)
	}
	return 1
}

// Index returns the i-th child of a list, or nil if out of range or
// the tree is not a list.
func (t *Tree) Index(i int) *Tree {
	if t.kind != KindList || i < 0 || i >= len(t.list) {
		return nil
	}
	return t.list[i]
}

// At resolves a dotted path to a subtree. Decimal segments index into
// lists; other segments name node children. The empty path returns the
// tree itself.
func (t *Tree) At(path string) (*Tree, error) {
	if path == "" {
		return t, nil
	}
	cur := t
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, errors.Wrapf(array.ErrInvalidArgument, "empty segment in path %q", path)
		}
		switch cur.kind {
		case KindNode:
			next := cur.node[segment]
			if next == nil {
				return nil, errors.Wrapf(array.ErrInvalidArgument, "path %q: no child %q", path, segment)
			}
			cur = next
		case KindList:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 {
				return nil, errors.Wrapf(array.ErrInvalidArgument, "path %q: %q does not index a list", path, segment)
			}
			if i >= len(cur.list) {
				return nil, errors.Wrapf(array.ErrInvalidArgument, "path %q: index %d out of range (len %d)", path, i, len(cur.list))
			}
			cur = cur.list[i]
		default:
			return nil, errors.Wrapf(array.ErrInvalidArgument, "path %q: %q descends into a leaf", path, segment)
		}
	}
	return cur, nil
}

// Walk visits every leaf in deterministic order, passing its dotted
// path and array. Traversal stops at the first error, which is
// returned.
func (t *Tree) Walk(fn func(path string, leaf *array.Array) error) error {
	return t.walk("", fn)
}

func (t *Tree) walk(prefix string, fn func(string, *array.Array) error) error {
	switch t.kind {
	case KindLeaf:
		return fn(prefix, t.leaf)
	case KindNode:
		for _, key := range t.Keys() {
			if err := t.node[key].walk(joinPath(prefix, key), fn); err != nil {
				return err
			}
		}
	case KindList:
		for i, child := range t.list {
			if err := child.walk(joinPath(prefix, strconv.Itoa(i)), fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Map builds a structurally identical tree with every leaf replaced by
// fn's result. Leaves are visited in the same order as Walk.
func (t *Tree) Map(fn func(path string, leaf *array.Array) (*array.Array, error)) (*Tree, error) {
	return t.mapTree("", fn)
}

func (t *Tree) mapTree(prefix string, fn func(string, *array.Array) (*array.Array, error)) (*Tree, error) {
	switch t.kind {
	case KindLeaf:
		out, err := fn(prefix, t.leaf)
		if err != nil {
			return nil, err
		}
		return Leaf(out), nil
	case KindNode:
		node := make(map[string]*Tree, len(t.node))
		for _, key := range t.Keys() {
			child, err := t.node[key].mapTree(joinPath(prefix, key), fn)
			if err != nil {
				return nil, err
			}
			node[key] = child
		}
		return &Tree{kind: KindNode, node: node}, nil
	default:
		list := make([]*Tree, len(t.list))
		for i, child := range t.list {
			mapped, err := child.mapTree(joinPath(prefix, strconv.Itoa(i)), fn)
			if err != nil {
				return nil, err
			}
			list[i] = mapped
		}
		return &Tree{kind: KindList, list: list}, nil
	}
}

// Clone copies the tree structure. Leaf arrays are shared, which is
// safe because arrays are immutable.
func (t *Tree) Clone() *Tree {
	switch t.kind {
	case KindLeaf:
		return Leaf(t.leaf)
	case KindNode:
		node := make(map[string]*Tree, len(t.node))
		for key, child := range t.node {
			node[key] = child.Clone()
		}
		return &Tree{kind: KindNode, node: node}
	default:
		list := make([]*Tree, len(t.list))
		for i, child := range t.list {
			list[i] = child.Clone()
		}
		return &Tree{kind: KindList, list: list}
	}
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
