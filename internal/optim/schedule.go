package optim

import (
	"math"

	"github.com/pkg/errors"
)

// ExponentialDecay returns a schedule that multiplies init by
// decayRate once per step.
func ExponentialDecay(init, decayRate float64) Schedule {
	return func(step int64) float64 {
		return init * math.Pow(decayRate, float64(step))
	}
}

// StepDecay returns a schedule that multiplies init by decayRate every
// stepSize steps, holding it constant in between.
func StepDecay(init, decayRate float64, stepSize int64) (Schedule, error) {
	if stepSize < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "step decay needs stepSize >= 1, got %d", stepSize)
	}
	return func(step int64) float64 {
		return init * math.Pow(decayRate, float64(step/stepSize))
	}, nil
}

// CosineDecay returns a schedule that follows a half cosine from init
// down to end over decaySteps steps, then holds end.
func CosineDecay(init float64, decaySteps int64, end float64) (Schedule, error) {
	if decaySteps < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "cosine decay needs decaySteps >= 1, got %d", decaySteps)
	}
	return func(step int64) float64 {
		s := min(step, decaySteps)
		decay := 0.5 * (1 + math.Cos(math.Pi*float64(s)/float64(decaySteps)))
		return end + decay*(init-end)
	}, nil
}

// LinearSchedule returns a schedule that interpolates from init to end
// over the given number of steps, then holds end.
func LinearSchedule(init, end float64, steps int64) (Schedule, error) {
	if steps < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "linear schedule needs steps >= 1, got %d", steps)
	}
	return func(step int64) float64 {
		s := min(step, steps)
		return init + float64(s)/float64(steps)*(end-init)
	}, nil
}

// JoinSchedules chains schedules end to end. boundaries[i] is the step
// at which schedules[i+1] takes over; each later schedule sees its
// step counter restarted from zero at its boundary.
func JoinSchedules(schedules []Schedule, boundaries []int64) (Schedule, error) {
	if len(schedules) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "join schedules needs at least one schedule")
	}
	if len(boundaries) != len(schedules)-1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration,
			"join schedules needs one boundary between each pair, got %d schedules and %d boundaries",
			len(schedules), len(boundaries))
	}
	for i, b := range boundaries {
		if b < 1 || (i > 0 && b <= boundaries[i-1]) {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "boundaries must be positive and increasing, got %v", boundaries)
		}
	}
	return func(step int64) float64 {
		idx := 0
		var offset int64
		for i, b := range boundaries {
			if step < b {
				break
			}
			idx = i + 1
			offset = b
		}
		return schedules[idx](step - offset)
	}, nil
}
