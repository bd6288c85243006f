package services

import "testing"

func TestDefaultRoadmapCatalog(t *testing.T) {
	if len(DefaultRoadmap) == 0 {
		t.Fatal("default roadmap is empty")
	}

	seen := make(map[string]bool)
	validPriority := map[string]bool{"high": true, "medium": true, "low": true}
	validEffort := map[string]bool{"quick-win": true, "habit": true, "project": true}

	for _, step := range DefaultRoadmap {
		if step.ID == "" || step.Title == "" {
			t.Errorf("step %q missing id or title", step.ID)
		}
		if seen[step.ID] {
			t.Errorf("duplicate step id %q", step.ID)
		}
		seen[step.ID] = true
		if !validPriority[step.Priority] {
			t.Errorf("step %q has unknown priority %q", step.ID, step.Priority)
		}
		if !validEffort[step.Effort] {
			t.Errorf("step %q has unknown effort %q", step.ID, step.Effort)
		}
		if len(step.Actions) == 0 {
			t.Errorf("step %q has no actions", step.ID)
		}
	}
}

func TestFindStep(t *testing.T) {
	if findStep("hydration") == nil {
		t.Error("findStep(hydration) = nil, want step")
	}
	if findStep("no-such-step") != nil {
		t.Error("findStep(no-such-step) != nil")
	}
}

func TestRoundPct(t *testing.T) {
	cases := []struct {
		frac float64
		want float64
	}{
		{0, 0},
		{1, 100},
		{0.5, 50},
		{1.0 / 3.0, 33.3},
		{2.0 / 3.0, 66.7},
	}
	for _, c := range cases {
		if got := roundPct(c.frac); got != c.want {
			t.Errorf("roundPct(%v) = %v, want %v", c.frac, got, c.want)
		}
	}
}
