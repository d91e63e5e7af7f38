package evergreen

import "math"

// assembledThreshold is the progress at which particles stop floating and
// lock to their base rotation.
const assembledThreshold = 0.99

// Reveal staggering: particles are bucketed by slot so they don't all grow
// in lock-step. A bucket's reveal starts at bucket/staggerBuckets *
// staggerSpan of total progress.
const (
	staggerBuckets = 50
	staggerSpan    = 0.2
)

// FrameTime is the clock input of one frame.
type FrameTime struct {
	// Elapsed is the cumulative time in seconds; drives oscillations.
	Elapsed float64
	// Delta is the time since the previous frame; drives smoothing.
	Delta float64
}

// Clock accumulates frame deltas into a monotonically increasing time.
type Clock struct {
	elapsed float64
}

// Tick advances the clock by dt seconds and returns the frame's time.
// Negative, NaN and infinite deltas are treated as zero.
func (c *Clock) Tick(dt float64) FrameTime {
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}
	c.elapsed += dt
	return FrameTime{Elapsed: c.elapsed, Delta: dt}
}

// Elapsed returns the accumulated time.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// MorphState is the scene-wide morph progress.
type MorphState struct {
	// Progress blends from scattered (0) to assembled (1).
	Progress float64
	// Target is the progress the current arrangement pulls toward.
	Target float64
	// Elapsed is the frame clock at the last update.
	Elapsed float64
}

// categoryRule is how one category eases, sways and stretches.
type categoryRule struct {
	reveal   EaseFunc
	sway     bool    // small rotation sway while assembled
	stretchY float64 // height multiplier on top of the uniform scale
}

// rules is indexed by Category. The big star has its own path in starPose.
var rules = [categoryCount]categoryRule{
	CategoryFoliage:   {reveal: Linear, stretchY: 1},
	CategoryBox:       {reveal: BackOut, sway: true, stretchY: 1},
	CategoryRibbon:    {reveal: BackOut, sway: true, stretchY: 1},
	CategorySphere:    {reveal: Linear, stretchY: 1},
	CategoryCone:      {reveal: Linear, stretchY: 2.5},
	CategorySmallStar: {reveal: BackOut, sway: true, stretchY: 1},
	CategoryBigStar:   {reveal: Linear, stretchY: 1},
}

// Animator drives every particle of a dataset toward the requested
// arrangement. It is not safe for concurrent use; call Update once per
// frame from the frame loop.
type Animator struct {
	data    *Dataset
	speed   float64
	state   MorphState
	scratch Transform

	// starSpin accumulates the big star's tumble while scattered.
	starSpin Euler
}

// NewAnimator creates an Animator over d with progress at 0 (scattered).
// speed is the damping rate of the progress in 1/seconds.
func NewAnimator(d *Dataset, speed float64) *Animator {
	return &Animator{data: d, speed: speed}
}

// State returns a copy of the morph state.
func (a *Animator) State() MorphState {
	return a.state
}

// Progress returns the current morph progress.
func (a *Animator) Progress() float64 {
	return a.state.Progress
}

// SetProgress jumps the progress to p, clamped to [0, 1].
func (a *Animator) SetProgress(p float64) {
	a.state.Progress = clamp01(p)
}

// SetSpeed changes the damping rate.
func (a *Animator) SetSpeed(speed float64) {
	a.speed = speed
}

// Step advances the progress toward arr's target by one frame without
// writing any instances.
func (a *Animator) Step(arr Arrangement, ft FrameTime) {
	a.state.Target = arr.Target()
	a.state.Progress = clamp01(Damp(a.state.Progress, a.state.Target, a.speed, ft.Delta))
	a.state.Elapsed = ft.Elapsed
}

// Update runs one frame: it advances the progress toward arr and writes one
// matrix per particle into sink. If sink is nil or not ready the progress
// still advances and no instances are written.
func (a *Animator) Update(arr Arrangement, ft FrameTime, sink InstanceSink) {
	a.Step(arr, ft)
	p := a.state.Progress
	a.advanceStar(p, ft)

	if sink == nil || !sink.Ready() {
		return
	}

	for _, c := range Categories {
		if c == CategoryBigStar {
			continue
		}
		group := a.data.groups[c]
		for i := range group {
			a.pose(&a.scratch, &group[i], p, ft.Elapsed)
			sink.SetMatrixAt(c, i, a.scratch.Matrix())
		}
	}

	star := &a.data.groups[CategoryBigStar][0]
	a.starPose(&a.scratch, star, p, ft.Elapsed)
	sink.SetMatrixAt(CategoryBigStar, 0, a.scratch.Matrix())
}

// ApplyColors writes every particle's static color into sink. Call once
// when the sink becomes ready.
func (a *Animator) ApplyColors(sink InstanceSink) {
	if sink == nil || !sink.Ready() {
		return
	}
	for _, c := range Categories {
		for i, p := range a.data.groups[c] {
			sink.SetColorAt(c, i, p.Color)
		}
	}
}

// Pose computes the transform of one pooled particle at the given progress
// and time without modifying the animator. The big star's rotation while
// scattered is the tumble accumulated by previous Update calls, so its pose
// depends on the animator's history; every other particle's pose is a pure
// function of its record, progress and elapsed.
func (a *Animator) Pose(p Particle, progress, elapsed float64) Transform {
	var t Transform
	if p.Category == CategoryBigStar {
		a.starPose(&t, &p, progress, elapsed)
	} else {
		a.pose(&t, &p, progress, elapsed)
	}
	return t
}

func (a *Animator) pose(t *Transform, p *Particle, progress, elapsed float64) {
	t.Reset()
	rule := &rules[p.Category]

	t.Position = p.ScatterPosition.Lerp(p.TreePosition, progress)
	if progress < assembledThreshold {
		drift := 1 - progress
		t.Position.Y += math.Sin(elapsed*p.Speed+p.Phase) * drift
		t.Position.X += math.Cos(elapsed*0.5+p.Phase) * drift * 0.5

		tumble := elapsed * p.RotationSpeed * drift
		t.Rotation = Euler{
			X: p.BaseRotation.X + tumble,
			Y: p.BaseRotation.Y + tumble,
			Z: p.BaseRotation.Z,
		}
	} else {
		t.Rotation = p.BaseRotation
		if rule.sway {
			t.Rotation.Y += math.Sin(elapsed*0.5+p.Phase) * 0.05
		}
	}

	s := p.BaseScale * rule.reveal(RevealFactor(p.ID, progress))
	t.Scale = Vec3{s, s * rule.stretchY, s}
}

// starPose places the big star. It floats and pulses but is never staggered.
func (a *Animator) starPose(t *Transform, p *Particle, progress, elapsed float64) {
	t.Reset()
	t.Position = p.ScatterPosition.Lerp(p.TreePosition, progress)
	if progress < assembledThreshold {
		t.Position.Y += math.Sin(elapsed) * 0.5 * (1 - progress)
		t.Rotation = a.starSpin
	} else {
		t.Rotation = Euler{Y: elapsed * 0.5}
	}
	t.SetScalar(p.BaseScale * (1 + math.Sin(elapsed*3)*0.1))
}

// advanceStar integrates the star's tumble while scattered and snaps it
// upright once assembled, so the tumble resumes from the upright pose.
func (a *Animator) advanceStar(progress float64, ft FrameTime) {
	if progress < assembledThreshold {
		a.starSpin.Y += ft.Delta
		a.starSpin.Z += ft.Delta * 0.5
		return
	}
	a.starSpin = Euler{Y: ft.Elapsed * 0.5}
}

// StaggerStart returns the progress at which the particle in slot id starts
// its reveal.
func StaggerStart(id int) float64 {
	return float64(id%staggerBuckets) / staggerBuckets * staggerSpan
}

// RevealFactor returns the un-eased reveal of the particle in slot id at
// the given progress, in [0, 1].
func RevealFactor(id int, progress float64) float64 {
	return Smoothstep(progress, StaggerStart(id), 1)
}
