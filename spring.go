package shaped

import "math"

// Common spring stiffness values. Higher stiffness settles faster.
const (
	StiffnessHigh    = 10000.0
	StiffnessMedium  = 1500.0
	StiffnessLow     = 200.0
	StiffnessVeryLow = 50.0
)

// Common spring damping ratios. Ratios below 1 overshoot the target and
// bounce; a ratio of 1 is critically damped and settles without
// overshoot.
const (
	DampingRatioHighBouncy   = 0.2
	DampingRatioMediumBouncy = 0.5
	DampingRatioLowBouncy    = 0.75
	DampingRatioNoBouncy     = 1.0
)

// Equilibrium thresholds. A spring counts as settled once both its
// displacement from the target and its velocity drop below these.
const (
	springValueThreshold    = 0.75
	springVelocityThreshold = springValueThreshold * 62.5
)

// SpringForce describes a damped harmonic spring. The zero value is not
// usable; use NewSpringForce or set Stiffness and DampingRatio directly.
type SpringForce struct {
	// Stiffness of the spring. Must be positive.
	Stiffness float64

	// DampingRatio of the spring. Must be non-negative.
	DampingRatio float64
}

// NewSpringForce returns a spring with medium stiffness and no bounce.
func NewSpringForce() SpringForce {
	return SpringForce{
		Stiffness:    StiffnessMedium,
		DampingRatio: DampingRatioNoBouncy,
	}
}

// Update advances the spring by deltaT seconds from the given
// displacement (value minus target) and velocity, returning the new
// displacement and velocity. The solution is closed form, so the result
// is independent of how the elapsed time is sliced into ticks.
func (f SpringForce) Update(displacement, velocity, deltaT float64) (float64, float64) {
	naturalFreq := math.Sqrt(f.Stiffness)
	ratio := f.DampingRatio

	switch {
	case ratio > 1:
		// Overdamped: sum of two decaying exponentials.
		s := naturalFreq * math.Sqrt(ratio*ratio-1)
		gammaPlus := -ratio*naturalFreq + s
		gammaMinus := -ratio*naturalFreq - s
		coeffB := (gammaMinus*displacement - velocity) / (gammaMinus - gammaPlus)
		coeffA := displacement - coeffB
		expMinus := math.Exp(gammaMinus * deltaT)
		expPlus := math.Exp(gammaPlus * deltaT)
		d := coeffA*expMinus + coeffB*expPlus
		v := coeffA*gammaMinus*expMinus + coeffB*gammaPlus*expPlus
		return d, v

	case ratio == 1:
		// Critically damped: fastest settle without oscillation.
		coeffA := displacement
		coeffB := velocity + naturalFreq*displacement
		decay := math.Exp(-naturalFreq * deltaT)
		d := (coeffA + coeffB*deltaT) * decay
		v := d*(-naturalFreq) + coeffB*decay
		return d, v

	default:
		// Underdamped: decaying oscillation around the target.
		dampedFreq := naturalFreq * math.Sqrt(1-ratio*ratio)
		cosCoeff := displacement
		sinCoeff := (ratio*naturalFreq*displacement + velocity) / dampedFreq
		decay := math.Exp(-ratio * naturalFreq * deltaT)
		cos := math.Cos(dampedFreq * deltaT)
		sin := math.Sin(dampedFreq * deltaT)
		d := decay * (cosCoeff*cos + sinCoeff*sin)
		v := d*(-ratio)*naturalFreq +
			decay*(-cosCoeff*dampedFreq*sin+sinCoeff*dampedFreq*cos)
		return d, v
	}
}

// AtEquilibrium reports whether a spring with the given displacement and
// velocity counts as settled.
func (SpringForce) AtEquilibrium(displacement, velocity float64) bool {
	return math.Abs(velocity) < springVelocityThreshold &&
		math.Abs(displacement) < springValueThreshold
}

// CornerSpringAnimator animates the four corner sizes of a shape toward
// their targets with independent springs that share one SpringForce.
//
// Drive it from the application's frame loop: call SetTargets when the
// desired corner sizes change and Tick once per frame.
type CornerSpringAnimator struct {
	force      SpringForce
	values     [4]float64
	velocities [4]float64
	targets    [4]float64
	animating  [4]bool
}

// NewCornerSpringAnimator creates an animator whose four springs use the
// given force. All values start at zero and settled.
func NewCornerSpringAnimator(force SpringForce) *CornerSpringAnimator {
	return &CornerSpringAnimator{force: force}
}

// Force returns the spring force shared by the four springs.
func (a *CornerSpringAnimator) Force() SpringForce { return a.force }

// SetForce replaces the spring force for subsequent ticks.
func (a *CornerSpringAnimator) SetForce(force SpringForce) { a.force = force }

// SetTargets sets the target value of each corner spring. Springs whose
// target changed start animating from their current value and velocity.
func (a *CornerSpringAnimator) SetTargets(targets [4]float64) {
	for i, t := range targets {
		if a.targets[i] == t && !a.animating[i] {
			continue
		}
		a.targets[i] = t
		if a.values[i] != t {
			a.animating[i] = true
		}
	}
}

// SnapTo immediately moves every spring to the given values with zero
// velocity, without animating.
func (a *CornerSpringAnimator) SnapTo(values [4]float64) {
	a.values = values
	a.targets = values
	a.velocities = [4]float64{}
	a.animating = [4]bool{}
}

// Tick advances all animating springs by deltaT seconds and reports
// whether any spring is still animating afterwards.
func (a *CornerSpringAnimator) Tick(deltaT float64) bool {
	any := false
	for i := range a.values {
		if !a.animating[i] {
			continue
		}
		d := a.values[i] - a.targets[i]
		d, v := a.force.Update(d, a.velocities[i], deltaT)
		if a.force.AtEquilibrium(d, v) {
			a.values[i] = a.targets[i]
			a.velocities[i] = 0
			a.animating[i] = false
			continue
		}
		a.values[i] = a.targets[i] + d
		a.velocities[i] = v
		any = true
	}
	return any
}

// CurrentValues returns the current value of each corner spring.
func (a *CornerSpringAnimator) CurrentValues() [4]float64 { return a.values }

// SkipToEnd finishes all animations immediately, moving every spring to
// its target with zero velocity.
func (a *CornerSpringAnimator) SkipToEnd() {
	a.values = a.targets
	a.velocities = [4]float64{}
	a.animating = [4]bool{}
}

// Settled reports whether all four springs have reached their targets.
func (a *CornerSpringAnimator) Settled() bool {
	for _, running := range a.animating {
		if running {
			return false
		}
	}
	return true
}
