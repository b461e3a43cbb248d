// Copyright 2026 The MLX-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers for mlx-go.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum and Nesterov
//   - Adam / AdamW: Adaptive Moment Estimation, with decoupled decay
//   - RMSprop: running-average gradient scaling
//   - Lion: sign-momentum updates
//   - Schedules: learning rates as functions of the step counter
//   - Rule: the per-leaf contract for custom algorithms
//
// Parameters and gradients travel as tree.Tree values, so arbitrarily
// nested models share one optimizer driver.
//
// # Basic Usage
//
//	import (
//	    "github.com/MLXPorts/mlx-go/array"
//	    "github.com/MLXPorts/mlx-go/optim"
//	    "github.com/MLXPorts/mlx-go/tree"
//	)
//
//	func main() {
//	    w, _ := array.Zeros(array.Shape{4, 4})
//	    params := tree.Node(map[string]*tree.Tree{"weight": tree.Leaf(w)})
//
//	    opt, err := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for range steps {
//	        grads := computeGradients(params)
//	        params, err = opt.ApplyGradients(grads, params)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Schedules
//
// Any config takes an optional Schedule evaluated on the step counter
// before each update:
//
//	warmup, _ := optim.LinearSchedule(0, 1e-3, 100)
//	decay, _ := optim.CosineDecay(1e-3, 10000, 0)
//	lr, _ := optim.JoinSchedules([]optim.Schedule{warmup, decay}, []int64{100})
//
//	opt, err := optim.NewAdam(optim.AdamConfig{Schedule: lr})
//
// # State and Checkpoints
//
// Optimizer.State snapshots the step counter, learning rate, and all
// per-parameter records as a tree; SetState restores them wholesale
// and the next ApplyGradients re-initializes anything missing.
package optim
