package optim

import (
	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/array"
)

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR          float64  // Learning rate (default: 0.01)
	Momentum    float64  // Momentum factor (default: 0)
	Dampening   float64  // Dampening applied to the gradient term (default: 0)
	WeightDecay float64  // L2 penalty folded into the gradient (default: 0)
	Nesterov    bool     // Enables Nesterov momentum (default: false)
	Schedule    Schedule // Optional learning-rate schedule; overrides LR when set
}

// NewSGD creates a Stochastic Gradient Descent optimizer with optional
// momentum.
//
// Update rule without momentum:
//
//	g' = gradient + weightDecay * param
//	param = param - lr * g'
//
// Update rule with momentum:
//
//	v = momentum * v + (1 - dampening) * g'
//	update = v                  (or g' + momentum * v with Nesterov)
//	param = param - lr * update
//
// Nesterov momentum requires Momentum > 0 and Dampening == 0; any
// other combination fails with ErrInvalidConfiguration before the
// first update.
//
// Example:
//
//	opt, err := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) (*Optimizer, error) {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Nesterov && (config.Momentum <= 0 || config.Dampening != 0) {
		return nil, errors.Wrap(ErrInvalidConfiguration,
			"nesterov momentum requires momentum > 0 and dampening = 0")
	}

	rule := &sgdRule{
		momentum:    config.Momentum,
		dampening:   config.Dampening,
		weightDecay: config.WeightDecay,
		nesterov:    config.Nesterov,
	}
	return newOptimizer(rule, config.LR, config.Schedule), nil
}

type sgdRule struct {
	momentum    float64
	dampening   float64
	weightDecay float64
	nesterov    bool
}

func (s *sgdRule) Name() string { return "sgd" }

// InitSingle allocates the velocity buffer. Plain SGD carries no
// state, so the record is empty when momentum is off.
func (s *sgdRule) InitSingle(param *array.Array) (map[string]*array.Array, error) {
	if s.momentum <= 0 {
		return map[string]*array.Array{}, nil
	}
	v, err := array.ZerosLike(param)
	if err != nil {
		return nil, err
	}
	return map[string]*array.Array{"v": v}, nil
}

func (s *sgdRule) ApplySingle(grad, param *array.Array, state map[string]*array.Array, h Hyper) (*array.Array, map[string]*array.Array, error) {
	eff := grad
	if s.weightDecay != 0 {
		decayed, err := array.Multiply(param, s.weightDecay)
		if err != nil {
			return nil, nil, err
		}
		eff, err = array.Add(grad, decayed)
		if err != nil {
			return nil, nil, err
		}
	}

	if s.momentum <= 0 {
		// param = param - lr * g'
		scaled, err := array.Multiply(eff, h.LR)
		if err != nil {
			return nil, nil, err
		}
		newParam, err := array.Subtract(param, scaled)
		if err != nil {
			return nil, nil, err
		}
		return newParam, state, nil
	}

	v := state["v"]
	if v == nil {
		return nil, nil, errors.Wrap(array.ErrInvalidArgument, "sgd: state record missing velocity")
	}

	// v = momentum * v + (1 - dampening) * g'
	carried, err := array.Multiply(v, s.momentum)
	if err != nil {
		return nil, nil, err
	}
	injected := eff
	if s.dampening != 0 {
		injected, err = array.Multiply(eff, 1-s.dampening)
		if err != nil {
			return nil, nil, err
		}
	}
	newV, err := array.Add(carried, injected)
	if err != nil {
		return nil, nil, err
	}

	update := newV
	if s.nesterov {
		// update = g' + momentum * v
		lookahead, err := array.Multiply(newV, s.momentum)
		if err != nil {
			return nil, nil, err
		}
		update, err = array.Add(eff, lookahead)
		if err != nil {
			return nil, nil, err
		}
	}

	scaled, err := array.Multiply(update, h.LR)
	if err != nil {
		return nil, nil, err
	}
	newParam, err := array.Subtract(param, scaled)
	if err != nil {
		return nil, nil, err
	}
	return newParam, map[string]*array.Array{"v": newV}, nil
}
