package highlight

import (
	"testing"
	"time"
)

func TestMarksToggleAndClear(t *testing.T) {
	m := NewMarks()
	w := Word{Reference: "Genesis 1:1", Index: 2}

	if !m.ToggleWord(w) || !m.Word(w) {
		t.Fatal("word should be marked after first toggle")
	}
	if m.ToggleWord(w) || m.Word(w) {
		t.Fatal("word should be clear after second toggle")
	}

	m.ToggleWord(w)
	m.ToggleWord(Word{Reference: "Genesis 1:2", Index: 0})
	m.ToggleVerse("Genesis 1:3")
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}

	m.Clear()
	if m.Len() != 0 || m.Word(w) || m.Verse("Genesis 1:3") {
		t.Error("Clear left marks behind")
	}
}

func TestLongPressFiresAndSuppressesClick(t *testing.T) {
	var p Press
	id := p.Begin("Genesis 1:1")

	target, ok := p.Fire(id)
	if !ok || target != "Genesis 1:1" {
		t.Fatalf("Fire = %q, %v", target, ok)
	}
	p.Cancel() // release
	if p.Click() {
		t.Error("click after long press should be suppressed")
	}
	if !p.Click() {
		t.Error("suppression should only swallow one click")
	}
}

func TestEarlyReleaseCancelsCopy(t *testing.T) {
	var p Press
	id := p.Begin("Genesis 1:1")
	p.Cancel()

	if _, ok := p.Fire(id); ok {
		t.Error("timer fired after release")
	}
	if !p.Click() {
		t.Error("normal click should toggle")
	}
}

func TestStaleSessionIgnored(t *testing.T) {
	var p Press
	old := p.Begin("Genesis 1:1")
	p.Cancel()
	cur := p.Begin("Genesis 1:2")

	if _, ok := p.Fire(old); ok {
		t.Error("timer from an earlier session fired")
	}
	if target, ok := p.Fire(cur); !ok || target != "Genesis 1:2" {
		t.Errorf("current session Fire = %q, %v", target, ok)
	}
	if _, ok := p.Fire(cur); ok {
		t.Error("a session fires at most once")
	}
}

func TestBeginClearsLeftoverSuppression(t *testing.T) {
	var p Press
	id := p.Begin("Genesis 1:1")
	p.Fire(id)
	p.Begin("Genesis 1:2")
	p.Cancel()
	if !p.Click() {
		t.Error("a new press should not inherit suppression")
	}
}

func TestDoubleClick(t *testing.T) {
	d := DoubleClick{Window: 400 * time.Millisecond}
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if d.Click("Genesis 1:1", t0) {
		t.Error("first click is not a double click")
	}
	if !d.Click("Genesis 1:1", t0.Add(300*time.Millisecond)) {
		t.Error("second click within window should be a double click")
	}
	if d.Click("Genesis 1:1", t0.Add(350*time.Millisecond)) {
		t.Error("third click should start over")
	}

	if d.Click("Genesis 1:2", t0.Add(500*time.Millisecond)) {
		t.Error("click on another verse is not a double click")
	}
	if d.Click("Genesis 1:2", t0.Add(1000*time.Millisecond)) {
		t.Error("click outside window is not a double click")
	}
}
