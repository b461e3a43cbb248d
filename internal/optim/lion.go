package optim

import (
	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/array"
)

// LionConfig holds configuration for the Lion optimizer.
type LionConfig struct {
	LR          float64    // Learning rate (default: 1e-4)
	Betas       [2]float64 // Update and momentum coefficients (default: [0.9, 0.99])
	WeightDecay float64    // Multiplicative weight decay (default: 0)
	Schedule    Schedule   // Optional learning-rate schedule; overrides LR when set
}

// NewLion creates a Lion (EvoLved Sign Momentum) optimizer.
//
// Update rule:
//
//	c = beta1 * m + (1-beta1) * gradient   // update direction, not stored
//	m = beta2 * m + (1-beta2) * gradient   // stored momentum
//	param = param - lr * sign(c)
//
// With WeightDecay > 0 the parameter is first shrunk by
// (1 - lr*weightDecay). Because the update magnitude is fixed by
// sign(), Lion wants a learning rate several times smaller than AdamW
// would use.
//
// Reference: "Symbolic Discovery of Optimization Algorithms"
// (Chen et al., 2023)
func NewLion(config LionConfig) (*Optimizer, error) {
	// Set defaults
	if config.LR == 0 {
		config.LR = 1e-4
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.99
	}
	for _, beta := range config.Betas {
		if beta < 0 || beta >= 1 {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "beta %g outside [0, 1)", beta)
		}
	}

	rule := &lionRule{
		beta1:       config.Betas[0],
		beta2:       config.Betas[1],
		weightDecay: config.WeightDecay,
	}
	return newOptimizer(rule, config.LR, config.Schedule), nil
}

type lionRule struct {
	beta1       float64
	beta2       float64
	weightDecay float64
}

func (l *lionRule) Name() string { return "lion" }

func (l *lionRule) InitSingle(param *array.Array) (map[string]*array.Array, error) {
	m, err := array.ZerosLike(param)
	if err != nil {
		return nil, err
	}
	return map[string]*array.Array{"m": m}, nil
}

func (l *lionRule) ApplySingle(grad, param *array.Array, state map[string]*array.Array, h Hyper) (*array.Array, map[string]*array.Array, error) {
	m := state["m"]
	if m == nil {
		return nil, nil, errors.Wrap(array.ErrInvalidArgument, "lion: state record missing momentum")
	}

	// c = beta1 * m + (1-beta1) * g
	carried, err := array.Multiply(m, l.beta1)
	if err != nil {
		return nil, nil, err
	}
	fresh, err := array.Multiply(grad, 1-l.beta1)
	if err != nil {
		return nil, nil, err
	}
	direction, err := array.Add(carried, fresh)
	if err != nil {
		return nil, nil, err
	}

	// m = beta2 * m + (1-beta2) * g
	kept, err := array.Multiply(m, l.beta2)
	if err != nil {
		return nil, nil, err
	}
	mixed, err := array.Multiply(grad, 1-l.beta2)
	if err != nil {
		return nil, nil, err
	}
	newM, err := array.Add(kept, mixed)
	if err != nil {
		return nil, nil, err
	}

	base := param
	if l.weightDecay > 0 {
		base, err = array.Multiply(param, 1-h.LR*l.weightDecay)
		if err != nil {
			return nil, nil, err
		}
	}

	signed, err := array.Sign(direction)
	if err != nil {
		return nil, nil, err
	}
	update, err := array.Multiply(signed, h.LR)
	if err != nil {
		return nil, nil, err
	}
	newParam, err := array.Subtract(base, update)
	if err != nil {
		return nil, nil, err
	}

	return newParam, map[string]*array.Array{"m": newM}, nil
}
