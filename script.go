package evergreen

import (
	"encoding/json"
	"fmt"
	"math"
)

// settleEpsilon is how close progress must be to its target for a settle
// step to finish.
const settleEpsilon = 1e-3

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Initial string       `json:"initial,omitempty"`
	Steps   []scriptStep `json:"steps"`
}

// ScriptRunner sequences arrangement changes, waits and screenshots across
// frames for automated or headless runs. It is itself a Signal; attach it
// with Scene.SetScript.
//
// Actions:
//
//	assemble, scatter, toggle   change the arrangement
//	wait {frames}               hold for a number of frames
//	settle {frames}             hold until progress reaches its target, or
//	                            at most frames frames when frames > 0
//	screenshot {label}          call Scene.OnScreenshot
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	settling  bool
	state     Arrangement
	done      bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to a Scene via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	r := &ScriptRunner{steps: sc.Steps, state: Assembled}
	switch sc.Initial {
	case "", "assembled":
	case "scattered":
		r.state = Scattered
	default:
		return nil, fmt.Errorf("parse script: unknown initial arrangement %q", sc.Initial)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "assemble", "scatter", "toggle", "wait", "settle", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return r, nil
}

// SetScript attaches a ScriptRunner. The runner becomes the scene's signal
// and is stepped at the start of every Update.
func (s *Scene) SetScript(runner *ScriptRunner) {
	s.script = runner
	s.signal = runner
}

// Arrangement returns the arrangement requested by the script so far.
func (r *ScriptRunner) Arrangement() Arrangement {
	return r.state
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.settling {
		st := s.anim.State()
		if math.Abs(st.Progress-r.state.Target()) > settleEpsilon {
			if r.waitCount == 0 {
				return
			}
			r.waitCount--
			if r.waitCount > 0 {
				return
			}
		}
		r.settling = false
		r.waitCount = 0
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "assemble":
		r.state = Assembled
	case "scatter":
		r.state = Scattered
	case "toggle":
		if r.state == Assembled {
			r.state = Scattered
		} else {
			r.state = Assembled
		}
	case "screenshot":
		if s.OnScreenshot != nil {
			s.OnScreenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = true
		r.waitCount = max(st.Frames, 0)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling {
		r.done = true
	}
}
