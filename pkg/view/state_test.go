package view

import (
	"testing"

	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

func TestBlockingSelectedEndClearsIt(t *testing.T) {
	s := NewState(graph.DemoGraph())
	s.SetStart(0)
	s.SetEnd(1)

	if !s.ToggleBlocked(1) {
		t.Fatal("expected node 1 to become blocked")
	}
	start, end := s.Selection()
	if start != 0 {
		t.Errorf("start = %d, want 0", start)
	}
	if end != NoSelection {
		t.Errorf("end = %d, want cleared", end)
	}

	// Toggling back out removes membership but restores nothing.
	if s.ToggleBlocked(1) {
		t.Fatal("expected node 1 to become unblocked")
	}
	_, end = s.Selection()
	if end != NoSelection {
		t.Errorf("end = %d, want still cleared after unblock", end)
	}
}

func TestBlockingSelectedStartClearsIt(t *testing.T) {
	s := NewState(graph.DemoGraph())
	s.SetStart(5)

	s.ToggleBlocked(5)
	start, _ := s.Selection()
	if start != NoSelection {
		t.Errorf("start = %d, want cleared", start)
	}
}

func TestBlockedAndHazardAreMutuallyExclusive(t *testing.T) {
	s := NewState(graph.DemoGraph())

	s.ToggleHazard(7)
	s.ToggleBlocked(7)
	if ids := s.HazardIDs(); len(ids) != 0 {
		t.Errorf("hazard set = %v, want empty after blocking", ids)
	}
	if !s.IsBlocked(7) {
		t.Error("expected node 7 blocked")
	}

	s.ToggleHazard(7)
	if s.IsBlocked(7) {
		t.Error("expected blocked membership removed when marked hazardous")
	}
}

func TestResetClearsEverythingAtomically(t *testing.T) {
	s := NewState(graph.DemoGraph())
	s.SetStart(0)
	s.SetEnd(1)
	s.ToggleHazard(24)
	s.ToggleHazard(25)
	s.ToggleBlocked(30)
	s.SetSolvedPath(&graph.SolvedPath{Path: []graph.NodeID{0, 2, 4}})
	s.SetPredictions(&graph.Predictions{
		Traffic:      &graph.TrafficPrediction{},
		Hazards:      &graph.HazardPredictions{},
		RouteQuality: &graph.RouteQuality{},
	})

	out := s.Reset()
	if !out.HadHazards {
		t.Error("expected HadHazards")
	}
	if len(out.HazardIDs) != 2 || out.HazardIDs[0] != 24 || out.HazardIDs[1] != 25 {
		t.Errorf("hazard ids = %v, want [24 25]", out.HazardIDs)
	}

	snap := s.Snapshot()
	if snap.Start != NoSelection || snap.End != NoSelection {
		t.Error("selections not cleared")
	}
	if len(snap.Hazard) != 0 || len(snap.Blocked) != 0 {
		t.Error("hazard/blocked sets not cleared")
	}
	if snap.Solved != nil {
		t.Error("solved path not cleared")
	}
	if snap.Predictions != nil {
		t.Error("prediction caches not cleared")
	}
}

func TestResetWithoutHazards(t *testing.T) {
	s := NewState(graph.DemoGraph())
	s.SetStart(0)

	out := s.Reset()
	if out.HadHazards {
		t.Error("expected no hazards recorded")
	}
	if len(out.HazardIDs) != 0 {
		t.Errorf("hazard ids = %v, want empty", out.HazardIDs)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewState(graph.DemoGraph())
	s.ToggleBlocked(3)

	snap := s.Snapshot()
	snap.Blocked[9] = true

	if s.IsBlocked(9) {
		t.Error("mutating a snapshot must not affect the state")
	}
}

func TestControllerDispatch(t *testing.T) {
	s := NewState(graph.DemoGraph())
	c := NewController(s)

	if c.Mode() != ModeStart {
		t.Fatalf("initial mode = %v, want start", c.Mode())
	}
	c.Click(4)
	start, _ := s.Selection()
	if start != 4 {
		t.Errorf("start = %d, want 4", start)
	}

	c.SetMode(ModeEnd)
	c.Click(44)
	_, end := s.Selection()
	if end != 44 {
		t.Errorf("end = %d, want 44", end)
	}

	c.SetMode(ModeBlocked)
	c.Click(44)
	if !s.IsBlocked(44) {
		t.Error("expected node 44 blocked")
	}
	_, end = s.Selection()
	if end != NoSelection {
		t.Error("blocking the selected end must clear the selection")
	}

	// Clicks never change the mode.
	if c.Mode() != ModeBlocked {
		t.Errorf("mode = %v, want blocked", c.Mode())
	}
}

func TestControllerDoesNotRejectBlockedSelection(t *testing.T) {
	s := NewState(graph.DemoGraph())
	c := NewController(s)

	c.SetMode(ModeBlocked)
	c.Click(10)
	c.SetMode(ModeStart)
	c.Click(10)

	start, _ := s.Selection()
	if start != 10 {
		t.Errorf("start = %d, want 10 (controller performs no validation)", start)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"start", ModeStart, false},
		{"end", ModeEnd, false},
		{"blocked", ModeBlocked, false},
		{"hazard", ModeStart, true},
		{"", ModeStart, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
