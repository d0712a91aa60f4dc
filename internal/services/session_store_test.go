package services

import (
	"errors"
	"testing"
	"time"
)

func TestSessionStore(t *testing.T) {
	st := NewSessionStore(newTestBackend(Delays{}))
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	a := st.Create()
	b := st.Create()
	if a.ID == b.ID {
		t.Fatal("duplicate session ids")
	}
	if got, err := st.Get(a.ID); err != nil || got != a {
		t.Fatalf("Get() = %v, %v", got, err)
	}
	if _, err := st.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(unknown) = %v", err)
	}

	now = now.Add(20 * time.Minute)
	if _, err := st.Get(b.ID); err != nil {
		t.Fatal(err)
	}
	now = now.Add(15 * time.Minute)
	if n := st.Sweep(30 * time.Minute); n != 1 {
		t.Fatalf("Sweep() = %d, want 1", n)
	}
	if _, err := st.Get(a.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("idle session survived sweep")
	}
	select {
	case <-a.ctx.Done():
	default:
		t.Error("swept session not closed")
	}

	if !st.Delete(b.ID) || st.Delete(b.ID) {
		t.Error("Delete() should report true once")
	}
	if st.Len() != 0 {
		t.Errorf("Len() = %d", st.Len())
	}
}
