// Copyright 2026 The MLX-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/MLXPorts/mlx-go/internal/optim"
)

// Optimizer drives an update rule over whole parameter trees.
type Optimizer = optim.Optimizer

// Rule is the per-leaf contract implemented by every algorithm; supply
// one to New to run a custom optimizer on the shared tree driver.
type Rule = optim.Rule

// Hyper carries the resolved learning rate and the post-increment step
// count into Rule.ApplySingle.
type Hyper = optim.Hyper

// Schedule computes a learning rate from the step counter.
type Schedule = optim.Schedule

// Config configures an Optimizer built around a custom Rule.
type Config = optim.Config

// ErrInvalidConfiguration reports contradictory or out-of-range
// optimizer options at construction time.
var ErrInvalidConfiguration = optim.ErrInvalidConfiguration

// New builds an Optimizer around a custom Rule.
func New(rule Rule, config Config) (*Optimizer, error) {
	return optim.New(rule, config)
}

// SGD (Stochastic Gradient Descent)

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer with optional momentum.
//
// Example:
//
//	opt, err := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) (*Optimizer, error) {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer.
//
// Example:
//
//	opt, err := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	})
func NewAdam(config AdamConfig) (*Optimizer, error) {
	return optim.NewAdam(config)
}

// AdamWConfig contains configuration for the AdamW optimizer.
type AdamWConfig = optim.AdamWConfig

// NewAdamW creates an AdamW optimizer (Adam with decoupled weight
// decay).
func NewAdamW(config AdamWConfig) (*Optimizer, error) {
	return optim.NewAdamW(config)
}

// RMSprop

// RMSpropConfig contains configuration for the RMSprop optimizer.
type RMSpropConfig = optim.RMSpropConfig

// NewRMSprop creates an RMSprop optimizer.
func NewRMSprop(config RMSpropConfig) (*Optimizer, error) {
	return optim.NewRMSprop(config)
}

// Lion

// LionConfig contains configuration for the Lion optimizer.
type LionConfig = optim.LionConfig

// NewLion creates a Lion optimizer. Prefer a learning rate several
// times smaller than AdamW's for the same model.
func NewLion(config LionConfig) (*Optimizer, error) {
	return optim.NewLion(config)
}

// Schedules

// ExponentialDecay multiplies init by decayRate once per step.
func ExponentialDecay(init, decayRate float64) Schedule {
	return optim.ExponentialDecay(init, decayRate)
}

// StepDecay multiplies init by decayRate every stepSize steps.
func StepDecay(init, decayRate float64, stepSize int64) (Schedule, error) {
	return optim.StepDecay(init, decayRate, stepSize)
}

// CosineDecay follows a half cosine from init to end over decaySteps
// steps, then holds end.
func CosineDecay(init float64, decaySteps int64, end float64) (Schedule, error) {
	return optim.CosineDecay(init, decaySteps, end)
}

// LinearSchedule interpolates from init to end over steps steps.
func LinearSchedule(init, end float64, steps int64) (Schedule, error) {
	return optim.LinearSchedule(init, end, steps)
}

// JoinSchedules chains schedules, switching at each boundary step.
func JoinSchedules(schedules []Schedule, boundaries []int64) (Schedule, error) {
	return optim.JoinSchedules(schedules, boundaries)
}
