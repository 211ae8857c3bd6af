package session

import (
	"testing"
	"time"

	"creator-toolkit/internal/models"
)

func TestGetOrCreate(t *testing.T) {
	s := NewStore(time.Hour)

	id := s.GetOrCreate("")
	if id == "" {
		t.Fatal("expected a fresh session ID")
	}
	if got := s.GetOrCreate(id); got != id {
		t.Errorf("known ID should be reused, got %q want %q", got, id)
	}
	if got := s.GetOrCreate("unknown-id"); got == "unknown-id" {
		t.Error("unknown ID should be replaced, not adopted")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestUpdateAndView(t *testing.T) {
	s := NewStore(time.Hour)
	id := s.GetOrCreate("")

	ok := s.Update(id, func(st *State) {
		st.Draft = &models.DraftArtifact{Content: "draft text"}
	})
	if !ok {
		t.Fatal("Update on a live session should succeed")
	}

	var content string
	if ok := s.View(id, func(st *State) { content = st.Draft.Content }); !ok {
		t.Fatal("View on a live session should succeed")
	}
	if content != "draft text" {
		t.Errorf("draft content = %q", content)
	}

	if s.Update("missing", func(st *State) {}) {
		t.Error("Update on a missing session should report false")
	}
	if s.View("missing", func(st *State) {}) {
		t.Error("View on a missing session should report false")
	}
}

func TestSweep(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	stale := s.GetOrCreate("")

	time.Sleep(20 * time.Millisecond)
	fresh := s.GetOrCreate("")

	if removed := s.Sweep(); removed != 1 {
		t.Errorf("Sweep() = %d, want 1", removed)
	}
	if s.View(stale, func(*State) {}) {
		t.Error("stale session should be gone")
	}
	if !s.View(fresh, func(*State) {}) {
		t.Error("fresh session should survive")
	}
}

func TestExpiredSessionIsNotResumed(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	id := s.GetOrCreate("")

	time.Sleep(20 * time.Millisecond)
	if got := s.GetOrCreate(id); got == id {
		t.Error("an expired session should get a fresh ID")
	}
}
