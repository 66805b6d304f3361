package sparkle

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one action in a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type pointerScript struct {
	Steps []scriptStep `json:"steps"`
}

// scriptActions lists the recognised step actions.
var scriptActions = map[string]bool{
	"move": true, "leave": true, "click": true, "path": true,
	"wait": true, "screenshot": true, "pause": true, "play": true,
	"resize": true,
}

// TestRunner replays a scripted sequence of pointer input, pauses and
// screenshots one frame at a time. Attach it with Scene.SetTestRunner.
type TestRunner struct {
	steps   []scriptStep
	next    int
	waiting int
	done    bool
}

// LoadTestScript parses a JSON pointer script. Unknown actions are rejected
// so typos fail at load time rather than silently doing nothing.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script pointerScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse pointer script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the scene. It runs at the start of every
// Update, before input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has run and all injected input drained.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(s *Scene) {
	if r.done || len(s.injectQueue) > 0 {
		return
	}
	if r.waiting > 0 {
		r.waiting--
		return
	}
	if r.next >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	r.apply(s, st)

	if r.next >= len(r.steps) && r.waiting == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) apply(s *Scene, st scriptStep) {
	switch st.Action {
	case "move":
		s.InjectMove(st.X, st.Y)
	case "leave":
		s.InjectLeave()
	case "click":
		s.InjectClick(st.X, st.Y)
	case "path":
		s.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		// The current frame counts as the first.
		if st.Frames > 0 {
			r.waiting = st.Frames - 1
		}
	case "screenshot":
		s.Screenshot(st.Label)
	case "pause":
		s.Pause()
	case "play":
		s.Play()
	case "resize":
		s.Resize(st.Width, st.Height)
	}
}
