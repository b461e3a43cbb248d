// Package optim implements gradient-based optimizers over nested
// parameter trees.
//
// This package provides:
//   - Rule interface: the per-leaf contract each algorithm implements
//   - Optimizer: a generic driver that walks parameter and gradient
//     trees in lockstep and applies a Rule at every leaf
//   - SGD, Adam, AdamW, RMSprop, Lion: concrete update rules
//   - Schedules: learning-rate functions of the step counter
//
// Parameters, gradients, and optimizer state share the tree.Tree
// shape, so one structure-preserving walk serves every algorithm.
//
// Example usage:
//
//	opt, err := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	if err != nil {
//	    return err
//	}
//
//	for range epochs {
//	    grads := computeGradients(params)
//	    params, err = opt.ApplyGradients(grads, params)
//	    if err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/array"
	"github.com/MLXPorts/mlx-go/internal/tree"
)

// Hyper carries the per-call hyperparameters the driver resolves
// before touching any leaf: the effective learning rate (after
// schedule evaluation) and the already-incremented step count, so the
// first update ever sees Step == 1.
type Hyper struct {
	LR   float64
	Step int64
}

// Rule is the per-leaf contract implemented by every optimizer
// algorithm.
//
// InitSingle produces the zero-initialized state record for one
// parameter (for example {"v": zerosLike(p)} for SGD with momentum).
// ApplySingle computes the updated parameter and state record from the
// gradient, the current parameter, and the current record. Both are
// pure: they return new arrays and never mutate their inputs.
type Rule interface {
	// Name identifies the algorithm ("sgd", "adam", ...).
	Name() string

	// InitSingle builds the state record for a single parameter.
	InitSingle(param *array.Array) (map[string]*array.Array, error)

	// ApplySingle computes one parameter update.
	ApplySingle(grad, param *array.Array, state map[string]*array.Array, h Hyper) (*array.Array, map[string]*array.Array, error)
}

// Schedule computes a learning rate from the step counter. The driver
// evaluates it on the pre-increment step, so the first ApplyGradients
// call sees schedule(0).
type Schedule func(step int64) float64

// Config configures an Optimizer built around a custom Rule.
type Config struct {
	LR       float64  // Learning rate (default: 0.01)
	Schedule Schedule // Optional learning-rate schedule; overrides LR when set
}

// Optimizer drives a Rule over whole parameter trees.
//
// The optimizer owns a state tree that mirrors the parameter tree,
// holding one record per leaf, plus the step counter and the current
// learning rate. It is not safe for concurrent ApplyGradients calls;
// callers sharing one instance must serialize access.
type Optimizer struct {
	rule        Rule
	lr          float64
	schedule    Schedule
	step        int64
	state       *tree.Tree
	initialized bool
}

// New builds an Optimizer around a custom Rule. Most callers want the
// concrete constructors (NewSGD, NewAdam, ...) instead.
func New(rule Rule, config Config) (*Optimizer, error) {
	if rule == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "nil rule")
	}
	if config.LR == 0 {
		config.LR = 0.01
	}
	return newOptimizer(rule, config.LR, config.Schedule), nil
}

func newOptimizer(rule Rule, lr float64, schedule Schedule) *Optimizer {
	if schedule != nil {
		lr = schedule(0)
	}
	return &Optimizer{rule: rule, lr: lr, schedule: schedule}
}

// Rule returns the update rule this optimizer drives.
func (o *Optimizer) Rule() Rule { return o.rule }

// Step returns the number of ApplyGradients calls applied so far.
func (o *Optimizer) Step() int64 { return o.step }

// LearningRate returns the current effective learning rate.
func (o *Optimizer) LearningRate() float64 { return o.lr }

// SetLearningRate pins the learning rate to a constant, dropping any
// schedule installed at construction.
func (o *Optimizer) SetLearningRate(lr float64) {
	o.lr = lr
	o.schedule = nil
}

// Init builds state records for every leaf of params that does not
// have one yet, and marks the optimizer initialized. ApplyGradients
// calls it implicitly on first use, passing the gradient tree.
func (o *Optimizer) Init(params *tree.Tree) error {
	if params == nil {
		return errors.Wrap(array.ErrInvalidArgument, "init: nil parameter tree")
	}
	state, err := o.initTree(params, o.state)
	if err != nil {
		return err
	}
	o.state = state
	o.initialized = true
	return nil
}

// initTree mirrors params into a state tree, keeping records already
// present in existing and creating the missing ones.
func (o *Optimizer) initTree(params, existing *tree.Tree) (*tree.Tree, error) {
	switch params.Kind() {
	case tree.KindLeaf:
		if existing != nil {
			return existing, nil
		}
		record, err := o.rule.InitSingle(params.Value())
		if err != nil {
			return nil, err
		}
		return recordToTree(record), nil

	case tree.KindNode:
		node := make(map[string]*tree.Tree, params.Len())
		for _, key := range params.Keys() {
			var prior *tree.Tree
			if existing != nil {
				prior = existing.Child(key)
			}
			child, err := o.initTree(params.Child(key), prior)
			if err != nil {
				return nil, err
			}
			node[key] = child
		}
		return tree.Node(node), nil

	default:
		list := make([]*tree.Tree, params.Len())
		for i := range list {
			var prior *tree.Tree
			if existing != nil {
				prior = existing.Index(i)
			}
			child, err := o.initTree(params.Index(i), prior)
			if err != nil {
				return nil, err
			}
			list[i] = child
		}
		return tree.List(list), nil
	}
}

// ApplyGradients performs one optimization step and returns the
// updated parameter tree.
//
// The call sequence per step is fixed: lazy Init on the gradient tree
// if the optimizer is uninitialized, schedule evaluation on the
// pre-increment step, step increment, then one ApplySingle per tree
// position present in both gradients and parameters. Parameter leaves
// with no matching gradient pass through unchanged, as does their
// state.
func (o *Optimizer) ApplyGradients(grads, params *tree.Tree) (*tree.Tree, error) {
	if grads == nil || params == nil {
		return nil, errors.Wrap(array.ErrInvalidArgument, "apply gradients: nil tree")
	}
	if !o.initialized {
		if err := o.Init(grads); err != nil {
			return nil, err
		}
	}
	if o.schedule != nil {
		o.lr = o.schedule(o.step)
	}
	o.step++

	h := Hyper{LR: o.lr, Step: o.step}
	newParams, newState, err := o.applyTree("", params, grads, o.state, h)
	if err != nil {
		return nil, err
	}
	o.state = newState
	return newParams, nil
}

// applyTree zips the parameter, gradient, and state trees. It returns
// the updated parameter and state subtrees for this position.
func (o *Optimizer) applyTree(path string, params, grads, state *tree.Tree, h Hyper) (*tree.Tree, *tree.Tree, error) {
	if grads == nil {
		return params, state, nil
	}

	switch params.Kind() {
	case tree.KindLeaf:
		if !grads.IsLeaf() {
			return nil, nil, errors.Wrapf(array.ErrInvalidArgument,
				"apply gradients: %s gradient at parameter leaf %q", grads.Kind(), path)
		}
		record, err := treeToRecord(state, path)
		if err != nil {
			return nil, nil, err
		}
		newParam, newRecord, err := o.rule.ApplySingle(grads.Value(), params.Value(), record, h)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "apply gradients at %q", path)
		}
		return tree.Leaf(newParam), recordToTree(newRecord), nil

	case tree.KindNode:
		if !grads.IsNode() {
			return nil, nil, errors.Wrapf(array.ErrInvalidArgument,
				"apply gradients: %s gradient at parameter node %q", grads.Kind(), path)
		}
		newNode := make(map[string]*tree.Tree, params.Len())
		newState := make(map[string]*tree.Tree, params.Len())
		for _, key := range params.Keys() {
			var stateChild *tree.Tree
			if state != nil {
				stateChild = state.Child(key)
			}
			p, s, err := o.applyTree(childPath(path, key), params.Child(key), grads.Child(key), stateChild, h)
			if err != nil {
				return nil, nil, err
			}
			newNode[key] = p
			if s != nil {
				newState[key] = s
			}
		}
		return tree.Node(newNode), tree.Node(newState), nil

	default:
		if !grads.IsList() {
			return nil, nil, errors.Wrapf(array.ErrInvalidArgument,
				"apply gradients: %s gradient at parameter list %q", grads.Kind(), path)
		}
		newList := make([]*tree.Tree, params.Len())
		newState := make([]*tree.Tree, params.Len())
		for i := range newList {
			gradChild := grads.Index(i)
			var stateChild *tree.Tree
			if state != nil {
				stateChild = state.Index(i)
			}
			p, s, err := o.applyTree(childIndexPath(path, i), params.Index(i), gradChild, stateChild, h)
			if err != nil {
				return nil, nil, err
			}
			newList[i] = p
			newState[i] = s
		}
		return tree.List(newList), tree.List(newState), nil
	}
}

// recordToTree packs a state record into a node of leaves.
func recordToTree(record map[string]*array.Array) *tree.Tree {
	node := make(map[string]*tree.Tree, len(record))
	for name, arr := range record {
		node[name] = tree.Leaf(arr)
	}
	return tree.Node(node)
}

// treeToRecord unpacks the node of leaves stored at a parameter
// position. A gradient for a position with no state is an error: the
// state tree mirrors the most recently initialized tree, and silent
// re-initialization would hide a mismatched checkpoint.
func treeToRecord(state *tree.Tree, path string) (map[string]*array.Array, error) {
	if state == nil || !state.IsNode() {
		return nil, errors.Wrapf(array.ErrInvalidArgument,
			"apply gradients: no state record for parameter %q", path)
	}
	record := make(map[string]*array.Array, state.Len())
	for _, name := range state.Keys() {
		child := state.Child(name)
		if !child.IsLeaf() {
			return nil, errors.Wrapf(array.ErrInvalidArgument,
				"apply gradients: malformed state record for parameter %q", path)
		}
		record[name] = child.Value()
	}
	return record, nil
}

func childPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func childIndexPath(prefix string, i int) string {
	return childPath(prefix, strconv.Itoa(i))
}
