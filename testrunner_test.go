package sparkle

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "move", "x": 100, "y": 200},
			{"action": "path", "fromX": 0, "fromY": 0, "toX": 10, "toY": 10, "frames": 4},
			{"action": "wait", "frames": 3},
			{"action": "resize", "width": 640, "height": 480}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[1]; st.Action != "move" || st.X != 100 || st.Y != 200 {
		t.Errorf("step 1 = %+v", st)
	}
	if st := runner.steps[2]; st.ToX != 10 || st.Frames != 4 {
		t.Errorf("step 2 = %+v", st)
	}
	if st := runner.steps[4]; st.Width != 640 || st.Height != 480 {
		t.Errorf("step 4 = %+v", st)
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "drag"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerClickThenWait(t *testing.T) {
	opts := quietOptions()
	opts.Interactivity.Click = PointerEvent{Enable: true, Mode: ModeBubble}
	s, _ := newTestScene(opts)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 30, "y": 40},
		{"action": "wait", "frames": 2},
		{"action": "leave"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	s.Update() // click queued and consumed
	if !s.Session().Click.Active() {
		t.Fatal("click should be active after the first frame")
	}
	s.Update() // wait frame 1
	s.Update() // wait frame 2
	if runner.Done() {
		t.Fatal("runner finished before the leave step")
	}
	s.Update() // leave
	if s.Session().Status != PointerLeave {
		t.Error("leave step not applied")
	}
	s.Update()
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerWaitsForPathToDrain(t *testing.T) {
	s, _ := newTestScene(quietOptions())
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "path", "fromX": 0, "fromY": 0, "toX": 30, "toY": 0, "frames": 4},
		{"action": "screenshot", "label": "end"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 4; i++ {
		s.Update()
		if len(s.screenshotQueue) != 0 {
			t.Fatalf("frame %d: screenshot queued before path drained", i)
		}
	}
	s.Update()
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "end" {
		t.Errorf("screenshot queue = %v", s.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerPauseResize(t *testing.T) {
	s, _ := newTestScene(quietOptions())
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "pause"},
		{"action": "resize", "width": 100, "height": 80},
		{"action": "play"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	s.Update()
	if !s.Paused() {
		t.Error("pause step not applied")
	}
	s.Update()
	if s.Size() != (Vec2{100, 80}) {
		t.Errorf("size = %v", s.Size())
	}
	s.Update()
	if s.Paused() || !runner.Done() {
		t.Errorf("paused %v done %v", s.Paused(), runner.Done())
	}
}
