package reveal

import "testing"

func TestToggle(t *testing.T) {
	tr := NewTracker()

	if tr.Revealed("0-1") {
		t.Fatal("new tracker should reveal nothing")
	}

	tr.Toggle("0-1")
	if !tr.Revealed("0-1") {
		t.Error("item should be revealed after toggle")
	}
	if tr.Revealed("0-2") {
		t.Error("other items must be unaffected")
	}

	// Toggling twice restores the original state.
	tr.Toggle("0-1")
	if tr.Revealed("0-1") {
		t.Error("item should be hidden after second toggle")
	}
	if tr.Count() != 0 {
		t.Errorf("Count() = %d, want 0", tr.Count())
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("1-0")
	tr.Toggle("1-1")
	tr.Toggle("2-5")

	if tr.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", tr.Count())
	}

	tr.Reset()

	if tr.Count() != 0 {
		t.Errorf("Count() after reset = %d, want 0", tr.Count())
	}
	if tr.Revealed("1-0") {
		t.Error("reset must hide every item")
	}
}
