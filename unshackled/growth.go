package unshackled

import (
	"math"
	"math/rand"
	"time"
)

// rMax mimics the host C library's RAND_MAX for the nondeterministic
// growth policy's probability arithmetic; the absolute scale doesn't
// matter, only prob's position within [0, rMax].
const rMax = 1<<31 - 1

// GrowthPolicy decides the next rotation width once a new maximum real
// word width has been observed on a movd target.
type GrowthPolicy interface {
	Grow(newWordWidth, oldRotWidth uint64) (uint64, error)
}

// DeterministicPolicy grows rotwidth by a fixed step whenever the new
// word width crosses (rotwidth-slack)/2, clamped up to at least twice
// the new word width.
type DeterministicPolicy struct {
	Step  uint64 // in [4, 12]
	Slack uint64 // in [0, 5]
}

func (p DeterministicPolicy) Grow(newWordWidth, oldRotWidth uint64) (uint64, error) {
	// oldRotWidth-p.Slack wraps on underflow exactly as the original
	// uintmax_t subtraction does; with oldRotWidth always >= 10 and
	// slack <= 5 this never actually underflows in practice.
	threshold := (oldRotWidth - p.Slack) / 2
	if newWordWidth <= threshold {
		return oldRotWidth, nil
	}
	if oldRotWidth > math.MaxUint64-p.Step {
		return 0, errRotationWidthExceeded()
	}
	ret := oldRotWidth + p.Step
	if newWordWidth > math.MaxUint64/2 {
		return 0, errRotationWidthExceeded()
	}
	if alt := 2 * newWordWidth; alt > ret {
		ret = alt
	}
	return ret, nil
}

// NondeterministicPolicy grows rotwidth either because the new word
// width crossed rotwidth/2, or, independently, with fixed probability
// prob/rMax regardless of width.
type NondeterministicPolicy struct {
	Prob  uint64 // in [0.2*rMax, 0.8*rMax]
	Slack uint64 // in [0, 5]
	Rand  *rand.Rand
}

func (p NondeterministicPolicy) Grow(newWordWidth, oldRotWidth uint64) (uint64, error) {
	change := newWordWidth > oldRotWidth/2
	if uint64(p.Rand.Int63n(rMax+1)) <= p.Prob {
		change = true
	}
	if !change {
		return oldRotWidth, nil
	}
	if newWordWidth > math.MaxUint64/2 {
		return 0, errRotationWidthExceeded()
	}
	ret := oldRotWidth
	if alt := 2 * newWordWidth; alt > ret {
		ret = alt
	}
	rnd := uint64(p.Rand.Int63n(int64(p.Slack + 1)))
	if ret > math.MaxUint64-rnd {
		return 0, errRotationWidthExceeded()
	}
	return ret + rnd, nil
}

// Params are the startup parameters sampled once per run: initial
// rotation width, growth slack/step/probability, and which of the two
// policies governs this run. None of these are user-controllable; the
// randomization itself is part of Unshackled's specification.
type Params struct {
	InitialRotWidth uint64
	Policy          GrowthPolicy
}

// NewRandomParams samples a fresh set of startup parameters from rng.
func NewRandomParams(rng *rand.Rand) Params {
	initialRotWidth := uint64(10 + rng.Intn(6)) // [10, 15]
	slack := uint64(rng.Intn(6))                // [0, 5]
	step := uint64(4 + rng.Intn(9))              // [4, 12]

	var prob uint64
	for {
		prob = uint64(rng.Int63n(rMax + 1))
		if prob >= rMax/5 && prob/4 <= rMax/5 {
			break
		}
	}

	var policy GrowthPolicy
	if rng.Intn(2) == 0 {
		policy = DeterministicPolicy{Step: step, Slack: slack}
	} else {
		policy = NondeterministicPolicy{Prob: prob, Slack: slack, Rand: rng}
	}
	return Params{InitialRotWidth: initialRotWidth, Policy: policy}
}

// NewSeededRand builds the RNG used to sample Params, seeded from
// wall-clock time. Tests that need determinism construct rand.New
// themselves and call NewRandomParams directly.
func NewSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
