package services

import (
	"context"
	"testing"
	"time"

	"civic-reports/internal/i18n"
	"civic-reports/internal/models"
)

func newTestBackend(d Delays) *Backend {
	return NewBackend(nil, nil, d, i18n.English)
}

func newTestState(t *testing.T, b *Backend) *State {
	t.Helper()
	s := NewState("test-"+t.Name(), b)
	t.Cleanup(s.Close)
	return s
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// signIn walks the login wizard to the end with valid input.
func signIn(t *testing.T, s *State, role models.Role) models.Identity {
	t.Helper()
	if err := s.Login.SelectRole(role); err != nil {
		t.Fatalf("SelectRole() error = %v", err)
	}
	send, err := s.Login.SubmitCredential("1234 5678 9012")
	if err != nil {
		t.Fatalf("SubmitCredential() error = %v", err)
	}
	if _, err := send.Wait(waitCtx(t)); err != nil {
		t.Fatalf("send.Wait() error = %v", err)
	}
	verify, err := s.Login.SubmitCode("123456")
	if err != nil {
		t.Fatalf("SubmitCode() error = %v", err)
	}
	id, err := verify.Wait(waitCtx(t))
	if err != nil {
		t.Fatalf("verify.Wait() error = %v", err)
	}
	return id
}

// signInCitizen logs in a citizen and confirms Ranchi.
func signInCitizen(t *testing.T, s *State) models.Identity {
	t.Helper()
	id := signIn(t, s, models.RoleCitizen)
	if _, err := s.Municipality.Select("ranchi"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if _, err := s.Municipality.Confirm(); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	return id
}

func composeNow(t *testing.T, s *State, title, content string) models.Post {
	t.Helper()
	tk, err := s.Compose(title, content, nil)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	p, err := tk.Wait(waitCtx(t))
	if err != nil {
		t.Fatalf("compose Wait() error = %v", err)
	}
	return p
}
