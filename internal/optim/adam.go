package optim

import (
	"math"

	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/array"
)

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR             float64    // Learning rate (default: 0.001)
	Betas          [2]float64 // Moment decay coefficients (default: [0.9, 0.999])
	Eps            float64    // Term for numerical stability (default: 1e-8)
	BiasCorrection bool       // Rescales the moments for early steps (default: false)
	Schedule       Schedule   // Optional learning-rate schedule; overrides LR when set
}

// NewAdam creates an Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m = beta1 * m + (1-beta1) * gradient        // First moment
//	v = beta2 * v + (1-beta2) * gradient²       // Second moment
//	param = param - lr * m / (sqrt(v) + eps)
//
// With BiasCorrection enabled, lr is scaled by 1/(1-beta1^step) and
// sqrt(v) by 1/sqrt(1-beta2^step). The step counter is incremented
// before the update, so the first step uses step = 1 and the
// correction terms stay finite.
//
// Reference: "Adam: A Method for Stochastic Optimization"
// (Kingma & Ba, 2014)
//
// Example:
//
//	opt, err := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	})
func NewAdam(config AdamConfig) (*Optimizer, error) {
	rule, err := newAdamRule(&config)
	if err != nil {
		return nil, err
	}
	return newOptimizer(rule, config.LR, config.Schedule), nil
}

// newAdamRule applies defaults and validation shared by Adam and
// AdamW. It fills the zero fields of config in place so callers can
// reuse the resolved LR.
func newAdamRule(config *AdamConfig) (*adamRule, error) {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	for _, beta := range config.Betas {
		if beta < 0 || beta >= 1 {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "beta %g outside [0, 1)", beta)
		}
	}
	if config.Eps < 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "negative epsilon %g", config.Eps)
	}

	return &adamRule{
		beta1:          config.Betas[0],
		beta2:          config.Betas[1],
		eps:            config.Eps,
		biasCorrection: config.BiasCorrection,
	}, nil
}

type adamRule struct {
	beta1          float64
	beta2          float64
	eps            float64
	biasCorrection bool
}

func (a *adamRule) Name() string { return "adam" }

// InitSingle allocates the two moment buffers.
func (a *adamRule) InitSingle(param *array.Array) (map[string]*array.Array, error) {
	m, err := array.ZerosLike(param)
	if err != nil {
		return nil, err
	}
	v, err := array.ZerosLike(param)
	if err != nil {
		return nil, err
	}
	return map[string]*array.Array{"m": m, "v": v}, nil
}

func (a *adamRule) ApplySingle(grad, param *array.Array, state map[string]*array.Array, h Hyper) (*array.Array, map[string]*array.Array, error) {
	m, v := state["m"], state["v"]
	if m == nil || v == nil {
		return nil, nil, errors.Wrap(array.ErrInvalidArgument, "adam: state record missing moments")
	}

	// m = beta1 * m + (1-beta1) * g
	carriedM, err := array.Multiply(m, a.beta1)
	if err != nil {
		return nil, nil, err
	}
	freshM, err := array.Multiply(grad, 1-a.beta1)
	if err != nil {
		return nil, nil, err
	}
	newM, err := array.Add(carriedM, freshM)
	if err != nil {
		return nil, nil, err
	}

	// v = beta2 * v + (1-beta2) * g²
	squared, err := array.Square(grad)
	if err != nil {
		return nil, nil, err
	}
	carriedV, err := array.Multiply(v, a.beta2)
	if err != nil {
		return nil, nil, err
	}
	freshV, err := array.Multiply(squared, 1-a.beta2)
	if err != nil {
		return nil, nil, err
	}
	newV, err := array.Add(carriedV, freshV)
	if err != nil {
		return nil, nil, err
	}

	root, err := array.Sqrt(newV)
	if err != nil {
		return nil, nil, err
	}
	lr := h.LR
	if a.biasCorrection {
		lr = h.LR / (1 - math.Pow(a.beta1, float64(h.Step)))
		root, err = array.Multiply(root, 1/math.Sqrt(1-math.Pow(a.beta2, float64(h.Step))))
		if err != nil {
			return nil, nil, err
		}
	}

	// param = param - lr * m / (sqrt(v) + eps)
	denom, err := array.Add(root, a.eps)
	if err != nil {
		return nil, nil, err
	}
	numer, err := array.Multiply(newM, lr)
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

	return newParam, map[string]*array.Array{"m": newM, "v": newV}, nil
}

// AdamWConfig holds configuration for the AdamW optimizer.
type AdamWConfig struct {
	LR             float64    // Learning rate (default: 0.001)
	Betas          [2]float64 // Moment decay coefficients (default: [0.9, 0.999])
	Eps            float64    // Term for numerical stability (default: 1e-8)
	WeightDecay    float64    // Decoupled weight decay (default: 0.01)
	BiasCorrection bool       // Rescales the moments for early steps (default: false)
	Schedule       Schedule   // Optional learning-rate schedule; overrides LR when set
}

// NewAdamW creates an AdamW optimizer: Adam with decoupled weight
// decay. The parameter is shrunk multiplicatively before the Adam
// update:
//
//	param = param * (1 - lr * weightDecay)
//
// then updated exactly as Adam would. A zero WeightDecay field takes
// the 0.01 default; use Adam for no decay at all.
//
// Reference: "Decoupled Weight Decay Regularization"
// (Loshchilov & Hutter, 2019)
func NewAdamW(config AdamWConfig) (*Optimizer, error) {
	if config.WeightDecay == 0 {
		config.WeightDecay = 0.01
	}
	adamConfig := AdamConfig{
		LR:             config.LR,
		Betas:          config.Betas,
		Eps:            config.Eps,
		BiasCorrection: config.BiasCorrection,
	}
	inner, err := newAdamRule(&adamConfig)
	if err != nil {
		return nil, err
	}
	rule := &adamwRule{adamRule: *inner, weightDecay: config.WeightDecay}
	return newOptimizer(rule, adamConfig.LR, config.Schedule), nil
}

type adamwRule struct {
	adamRule
	weightDecay float64
}

func (a *adamwRule) Name() string { return "adamw" }

func (a *adamwRule) ApplySingle(grad, param *array.Array, state map[string]*array.Array, h Hyper) (*array.Array, map[string]*array.Array, error) {
	shrunk, err := array.Multiply(param, 1-h.LR*a.weightDecay)
	if err != nil {
		return nil, nil, err
	}
	return a.adamRule.ApplySingle(grad, shrunk, state, h)
}
