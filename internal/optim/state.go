package optim

import (
	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/array"
	"github.com/MLXPorts/mlx-go/internal/tree"
)

// Reserved top-level keys in the optimizer state tree.
const (
	stateKeyStep = "step"
	stateKeyLR   = "learning_rate"
	stateKeyTree = "parameters"
)

// State snapshots the optimizer as a tree: the step counter under
// "step" (rank-0 int64), the learning rate under "learning_rate"
// (rank-0 float32), and the per-parameter records.
//
// When the parameter tree is node-rooted its children sit directly at
// the top level next to the reserved keys, mirroring the layout
// checkpoints expect; leaf- or list-rooted trees nest under
// "parameters".
func (o *Optimizer) State() (*tree.Tree, error) {
	stepArr, err := array.FromScalar(o.step, array.Int64)
	if err != nil {
		return nil, err
	}
	lrArr, err := array.FromScalar(o.lr, array.Float32)
	if err != nil {
		return nil, err
	}

	node := map[string]*tree.Tree{
		stateKeyStep: tree.Leaf(stepArr),
		stateKeyLR:   tree.Leaf(lrArr),
	}
	if o.state != nil {
		if o.state.IsNode() {
			for _, key := range o.state.Keys() {
				if key == stateKeyStep || key == stateKeyLR {
					continue
				}
				node[key] = o.state.Child(key)
			}
		} else {
			node[stateKeyTree] = o.state
		}
	}
	return tree.Node(node), nil
}

// SetState replaces the optimizer state wholesale, as when restoring a
// checkpoint. The tree must carry the reserved "step" and
// "learning_rate" leaves; everything else becomes the per-parameter
// state. Loading resets the initialized flag, so the next
// ApplyGradients re-runs Init and fills any records the snapshot did
// not carry.
func (o *Optimizer) SetState(t *tree.Tree) error {
	if t == nil || !t.IsNode() {
		return errors.Wrap(array.ErrInvalidArgument, "set state: state must be a node tree")
	}

	step, err := scalarInt(t.Child(stateKeyStep))
	if err != nil {
		return errors.Wrap(err, "set state: step")
	}
	if step < 0 {
		return errors.Wrapf(array.ErrInvalidArgument, "set state: negative step %d", step)
	}
	lr, err := scalarFloat(t.Child(stateKeyLR))
	if err != nil {
		return errors.Wrap(err, "set state: learning_rate")
	}

	rest := make(map[string]*tree.Tree)
	for _, key := range t.Keys() {
		if key == stateKeyStep || key == stateKeyLR {
			continue
		}
		rest[key] = t.Child(key)
	}

	o.step = step
	o.lr = lr
	switch {
	case len(rest) == 0:
		o.state = nil
	case len(rest) == 1 && rest[stateKeyTree] != nil:
		o.state = rest[stateKeyTree]
	default:
		o.state = tree.Node(rest)
	}
	o.initialized = false
	return nil
}

// scalarInt reads a rank-0 integer leaf.
func scalarInt(t *tree.Tree) (int64, error) {
	arr, err := scalarLeaf(t)
	if err != nil {
		return 0, err
	}
	cast, err := array.AsType(arr, array.Int64)
	if err != nil {
		return 0, err
	}
	vals, err := cast.Int64s()
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

// scalarFloat reads a rank-0 floating leaf.
func scalarFloat(t *tree.Tree) (float64, error) {
	arr, err := scalarLeaf(t)
	if err != nil {
		return 0, err
	}
	cast, err := array.AsType(arr, array.Float64)
	if err != nil {
		return 0, err
	}
	vals, err := cast.Float64s()
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

func scalarLeaf(t *tree.Tree) (*array.Array, error) {
	if t == nil || !t.IsLeaf() || t.Value() == nil {
		return nil, errors.Wrap(array.ErrInvalidArgument, "missing scalar leaf")
	}
	arr := t.Value()
	if arr.Rank() != 0 {
		return nil, errors.Wrapf(array.ErrInvalidArgument, "scalar leaf has shape %v", arr.Shape())
	}
	return arr, nil
}
