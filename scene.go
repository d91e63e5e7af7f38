package evergreen

import (
	"time"
)

// Scene is the top-level object: it owns the dataset, the animator and the
// frame clock, reads the arrangement signal each frame and publishes
// transforms to the attached sink.
type Scene struct {
	cfg     Config
	palette Palette
	data    *Dataset
	anim    *Animator
	clock   Clock

	signal Signal
	sink   InstanceSink
	// colored records whether the static colors have reached the current
	// sink.
	colored bool

	debug  bool
	stats  debugStats
	script *ScriptRunner

	// OnScreenshot, if set, is called for every screenshot step of an
	// attached script. Renderers hook this to capture the next frame.
	OnScreenshot func(label string)
}

// NewScene validates cfg, builds the particle dataset and returns a scene
// whose signal is a Toggle starting in the Assembled arrangement with
// progress at 0, so the tree assembles on the first frames.
func NewScene(cfg Config) (*Scene, error) {
	data, err := BuildDataset(cfg, nil)
	if err != nil {
		return nil, err
	}
	return newScene(cfg, data)
}

// NewSceneWithDataset builds a scene around an existing dataset. cfg is
// still validated; its counts are ignored.
func NewSceneWithDataset(cfg Config, data *Dataset) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newScene(cfg, data)
}

func newScene(cfg Config, data *Dataset) (*Scene, error) {
	pal, err := cfg.Palette.Parse()
	if err != nil {
		return nil, err
	}
	return &Scene{
		cfg:     cfg,
		palette: pal,
		data:    data,
		anim:    NewAnimator(data, cfg.AnimationSpeed),
		signal:  NewToggle(Assembled),
	}, nil
}

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config {
	return s.cfg
}

// Palette returns the parsed palette.
func (s *Scene) Palette() Palette {
	return s.palette
}

// Dataset returns the scene's particles.
func (s *Scene) Dataset() *Dataset {
	return s.data
}

// Animator returns the scene's animator.
func (s *Scene) Animator() *Animator {
	return s.anim
}

// Signal returns the arrangement source read each frame.
func (s *Scene) Signal() Signal {
	return s.signal
}

// SetSignal replaces the arrangement source.
func (s *Scene) SetSignal(sig Signal) {
	s.signal = sig
}

// Toggle returns the scene's signal if it is a *Toggle, or nil.
func (s *Scene) Toggle() *Toggle {
	t, _ := s.signal.(*Toggle)
	return t
}

// Sink returns the attached sink, which may be nil.
func (s *Scene) Sink() InstanceSink {
	return s.sink
}

// SetSink attaches sink. Colors are uploaded on the first frame in which
// the sink is ready.
func (s *Scene) SetSink(sink InstanceSink) {
	s.sink = sink
	s.colored = false
}

// NewInstanceBuffer creates an InstanceBuffer sized for the scene and
// attaches it.
func (s *Scene) NewInstanceBuffer() *InstanceBuffer {
	buf := NewInstanceBuffer(s.data)
	s.SetSink(buf)
	return buf
}

// Progress returns the current morph progress.
func (s *Scene) Progress() float64 {
	return s.anim.Progress()
}

// Elapsed returns the scene clock.
func (s *Scene) Elapsed() float64 {
	return s.clock.Elapsed()
}

// SetDebug enables per-frame timing output on stderr.
func (s *Scene) SetDebug(on bool) {
	s.debug = on
}

// Update runs one frame of dt seconds: it advances any attached script,
// reads the signal, animates and commits the sink.
func (s *Scene) Update(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.script != nil {
		s.script.step(s)
	}

	arr := Assembled
	if s.signal != nil {
		arr = s.signal.Arrangement()
	}
	ft := s.clock.Tick(dt)

	ready := s.sink != nil && s.sink.Ready()
	if ready && !s.colored {
		s.anim.ApplyColors(s.sink)
		s.colored = true
	}

	s.anim.Update(arr, ft, s.sink)

	var t1 time.Time
	if s.debug {
		t1 = time.Now()
	}
	if ready {
		s.sink.Commit()
	}

	if s.debug {
		s.stats = debugStats{
			updateTime:  t1.Sub(t0),
			commitTime:  time.Since(t1),
			instances:   s.data.Total(),
			written:     ready,
			progress:    s.anim.Progress(),
			arrangement: arr,
		}
		s.debugLog(s.stats)
	}
}
