package som

import (
	"fmt"
	"math"
)

// State is the set of learning parameters in effect at a given iteration.
type State struct {
	Alpha  float64
	Sigma  int
	Radius int
}

// Policy computes the learning State at each iteration of a run of n iterations.
type Policy interface {
	Decay() Decay
	At(i, n int) State
	validate() error
}

// ExponentialDecay shrinks all parameters by exp(-i/tau) with tau = n / MaxRadius.
type ExponentialDecay struct {
	Alpha     float64
	Sigma     float64
	MaxRadius float64
}

// Decay returns the policy tag.
func (e ExponentialDecay) Decay() Decay {
	return DecayExponential
}

// At returns the learning state at iteration i.
func (e ExponentialDecay) At(i, n int) State {
	tau := float64(n) / e.MaxRadius
	f := math.Exp(-float64(i) / tau)
	return State{
		Alpha:  e.Alpha * f,
		Sigma:  int(e.Sigma * f),
		Radius: int(math.Ceil(e.MaxRadius * f)),
	}
}

func (e ExponentialDecay) validate() error {
	return nonNegative(e.Alpha, e.Sigma, e.MaxRadius)
}

// LinearDecay interpolates all parameters from their initial value at i=0 down to 0 at i=n.
type LinearDecay struct {
	Alpha     float64
	Sigma     float64
	MaxRadius float64
}

// Decay returns the policy tag.
func (l LinearDecay) Decay() Decay {
	return DecayLinear
}

// At returns the learning state at iteration i.
func (l LinearDecay) At(i, n int) State {
	f := float64(i) / float64(n)
	radius := int(math.Ceil(l.MaxRadius - l.MaxRadius*f))
	if radius < 0 {
		radius = 0
	}
	return State{
		Alpha:  l.Alpha - l.Alpha*f,
		Sigma:  int(l.Sigma - l.Sigma*f),
		Radius: radius,
	}
}

func (l LinearDecay) validate() error {
	return nonNegative(l.Alpha, l.Sigma, l.MaxRadius)
}

// ScheduledDecay is a piecewise constant policy.
// The active phase at iteration i is the number of breakpoints in Time that are <= i,
// so each parameter list carries one value per phase, e.g. len(Time)+1 values.
type ScheduledDecay struct {
	Time   []int
	Alpha  []float64
	Sigma  []int
	Radius []int
}

// Decay returns the policy tag.
func (s ScheduledDecay) Decay() Decay {
	return DecaySchedule
}

// Phase returns the active phase at iteration i.
func (s ScheduledDecay) Phase(i int) int {
	p := 0
	for _, t := range s.Time {
		if t <= i {
			p++
		}
	}
	return p
}

// At returns the learning state at iteration i.
func (s ScheduledDecay) At(i, n int) State {
	p := s.Phase(i)
	return State{
		Alpha:  s.Alpha[p],
		Sigma:  s.Sigma[p],
		Radius: s.Radius[p],
	}
}

func (s ScheduledDecay) validate() error {
	if len(s.Time) == 0 {
		return missing("time")
	}
	for i := 1; i < len(s.Time); i++ {
		if s.Time[i] < s.Time[i-1] {
			return invalid("time", fmt.Sprint(s.Time))
		}
	}
	phases := len(s.Time) + 1
	if len(s.Alpha) != phases {
		return invalid("alpha", fmt.Sprintf("%v (expected %d phases)", s.Alpha, phases))
	}
	if len(s.Sigma) != phases {
		return invalid("sigma", fmt.Sprintf("%v (expected %d phases)", s.Sigma, phases))
	}
	if len(s.Radius) != phases {
		return invalid("max_radius", fmt.Sprintf("%v (expected %d phases)", s.Radius, phases))
	}
	for _, r := range s.Radius {
		if r < 0 {
			return invalid("max_radius", fmt.Sprint(s.Radius))
		}
	}
	return nonNegative(s.Alpha...)
}

func nonNegative(ff ...float64) error {
	for _, f := range ff {
		if f < 0 || math.IsNaN(f) {
			return invalid("learning parameter", fmt.Sprint(f))
		}
	}
	return nil
}
