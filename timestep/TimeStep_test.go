package timestep

import "testing"

func TestStepType(t *testing.T) {
	first := New(First, 0, 0.9, 0)
	mid := New(Mid, -1, 0.9, 1)
	last := New(Last, 100, 0.9, 2)

	if !first.First() || first.Mid() || first.Last() {
		t.Errorf("expected first step, got %v", first)
	}
	if !mid.Mid() || mid.First() || mid.Last() {
		t.Errorf("expected mid step, got %v", mid)
	}
	if !last.Last() || last.First() || last.Mid() {
		t.Errorf("expected last step, got %v", last)
	}

	if s := Last.String(); s != "Last" {
		t.Errorf("expected Last, got %v", s)
	}
}
