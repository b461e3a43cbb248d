package optim

import (
	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/array"
)

// RMSpropConfig holds configuration for the RMSprop optimizer.
type RMSpropConfig struct {
	LR       float64  // Learning rate (default: 0.01)
	Alpha    float64  // Smoothing constant for the squared average (default: 0.99)
	Eps      float64  // Term for numerical stability (default: 1e-8)
	Schedule Schedule // Optional learning-rate schedule; overrides LR when set
}

// NewRMSprop creates an RMSprop optimizer.
//
// Update rule:
//
//	v = alpha * v + (1-alpha) * gradient²
//	param = param - lr * gradient / (sqrt(v) + eps)
//
// Reference: Tieleman & Hinton, "Lecture 6.5 - RMSprop", COURSERA:
// Neural Networks for Machine Learning (2012)
func NewRMSprop(config RMSpropConfig) (*Optimizer, error) {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Alpha == 0 {
		config.Alpha = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	if config.Alpha < 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "negative alpha %g", config.Alpha)
	}
	if config.Eps < 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "negative epsilon %g", config.Eps)
	}

	rule := &rmspropRule{alpha: config.Alpha, eps: config.Eps}
	return newOptimizer(rule, config.LR, config.Schedule), nil
}

type rmspropRule struct {
	alpha float64
	eps   float64
}

func (r *rmspropRule) Name() string { return "rmsprop" }

func (r *rmspropRule) InitSingle(param *array.Array) (map[string]*array.Array, error) {
	v, err := array.ZerosLike(param)
	if err != nil {
		return nil, err
	}
	return map[string]*array.Array{"v": v}, nil
}

func (r *rmspropRule) ApplySingle(grad, param *array.Array, state map[string]*array.Array, h Hyper) (*array.Array, map[string]*array.Array, error) {
	v := state["v"]
	if v == nil {
		return nil, nil, errors.Wrap(array.ErrInvalidArgument, "rmsprop: state record missing squared average")
	}

	// v = alpha * v + (1-alpha) * g²
	squared, err := array.Square(grad)
	if err != nil {
		return nil, nil, err
	}
	carried, err := array.Multiply(v, r.alpha)
	if err != nil {
		return nil, nil, err
	}
	fresh, err := array.Multiply(squared, 1-r.alpha)
	if err != nil {
		return nil, nil, err
	}
	newV, err := array.Add(carried, fresh)
	if err != nil {
		return nil, nil, err
	}

	// param = param - lr * g / (sqrt(v) + eps)
	root, err := array.Sqrt(newV)
	if err != nil {
		return nil, nil, err
	}
	denom, err := array.Add(root, r.eps)
	if err != nil {
		return nil, nil, err
	}
	numer, err := array.Multiply(grad, h.LR)
	if err != nil {
		return nil, nil, err
	}
	update, err := array.Divide(numer, denom)
	if err != nil {
		return nil, nil, err
	}
	newParam, err := array.Subtract(param, update)
	if err != nil {
		return nil, nil, err
	}

	return newParam, map[string]*array.Array{"v": newV}, nil
}
