package tree

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/array"
)

// PathLeaf pairs a leaf array with its dotted path.
type PathLeaf struct {
	Path  string
	Value *array.Array
}

// Flatten lists every leaf with its path, in Walk order.
func (t *Tree) Flatten() []PathLeaf {
	var flat []PathLeaf
	_ = t.Walk(func(path string, leaf *array.Array) error {
		flat = append(flat, PathLeaf{Path: path, Value: leaf})
		return nil
	})
	return flat
}

// Unflatten rebuilds a tree from flattened path/leaf pairs. Decimal
// path segments become list positions, other segments become node
// keys. List positions must be dense from zero; conflicting paths
// (one entry's path being a prefix of another's) are rejected.
func Unflatten(flat []PathLeaf) (*Tree, error) {
	if len(flat) == 0 {
		return nil, errors.Wrap(array.ErrInvalidArgument, "unflatten: no entries")
	}
	if len(flat) == 1 && flat[0].Path == "" {
		return Leaf(flat[0].Value), nil
	}

	root := &Tree{}
	for _, entry := range flat {
		if entry.Value == nil {
			return nil, errors.Wrapf(array.ErrInvalidArgument, "unflatten: nil leaf at %q", entry.Path)
		}
		if entry.Path == "" {
			return nil, errors.Wrap(array.ErrInvalidArgument, "unflatten: empty path among nested entries")
		}
		if err := insert(root, entry.Path, strings.Split(entry.Path, "."), entry.Value); err != nil {
			return nil, err
		}
	}
	if err := checkDense(root, ""); err != nil {
		return nil, err
	}
	return root, nil
}

// insert threads one leaf into the tree under construction, creating
// intermediate nodes and growing sparse lists as needed. An unset
// subtree has the Tree zero value and adopts the kind its first
// segment implies.
func insert(t *Tree, full string, segments []string, leaf *array.Array) error {
	segment := segments[0]
	if segment == "" {
		return errors.Wrapf(array.ErrInvalidArgument, "unflatten: empty segment in path %q", full)
	}

	index, numeric := parseIndex(segment)
	unset := t.kind == KindLeaf && t.leaf == nil && t.node == nil && t.list == nil
	switch {
	case unset && numeric:
		t.kind = KindList
	case unset:
		t.kind = KindNode
		t.node = make(map[string]*Tree)
	case t.kind == KindList && !numeric, t.kind == KindNode && numeric, t.kind == KindLeaf:
		return errors.Wrapf(array.ErrInvalidArgument, "unflatten: path %q conflicts with an earlier entry", full)
	}

	var child *Tree
	if t.kind == KindList {
		for index >= len(t.list) {
			t.list = append(t.list, nil)
		}
		if t.list[index] == nil {
			t.list[index] = &Tree{}
		}
		child = t.list[index]
	} else {
		child = t.node[segment]
		if child == nil {
			child = &Tree{}
			t.node[segment] = child
		}
	}

	if len(segments) == 1 {
		if child.kind != KindLeaf || child.leaf != nil || child.node != nil || child.list != nil {
			return errors.Wrapf(array.ErrInvalidArgument, "unflatten: path %q conflicts with an earlier entry", full)
		}
		child.leaf = leaf
		return nil
	}
	return insert(child, full, segments[1:], leaf)
}

// checkDense rejects lists with holes left by sparse indices.
func checkDense(t *Tree, prefix string) error {
	switch t.kind {
	case KindNode:
		for key, child := range t.node {
			if err := checkDense(child, joinPath(prefix, key)); err != nil {
				return err
			}
		}
	case KindList:
		for i, child := range t.list {
			if child == nil {
				return errors.Wrapf(array.ErrInvalidArgument, "unflatten: list %q missing index %d", prefix, i)
			}
			if err := checkDense(child, joinPath(prefix, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseIndex reports whether segment is a canonical non-negative
// decimal. Leading zeros are not canonical, so "01" names a node key.
func parseIndex(segment string) (int, bool) {
	i, err := strconv.Atoi(segment)
	if err != nil || i < 0 || strconv.Itoa(i) != segment {
		return 0, false
	}
	return i, true
}
