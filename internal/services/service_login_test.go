package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"civic-reports/internal/models"
)

func TestLoginCitizen(t *testing.T) {
	f := NewLoginFlow(context.Background(), Delays{})
	f.randomDigits = func(n int) (string, error) { return strings.Repeat("7", n), nil }

	if err := f.SelectRole(models.RoleCitizen); err != nil {
		t.Fatalf("SelectRole() error = %v", err)
	}
	if got := f.Snapshot().Step; got != models.StepCredential {
		t.Fatalf("step = %s, want %s", got, models.StepCredential)
	}
	send, err := f.SubmitCredential("1234-5678-9012")
	if err != nil {
		t.Fatalf("SubmitCredential() error = %v", err)
	}
	st, err := send.Wait(waitCtx(t))
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if st.Step != models.StepCode || st.Sending {
		t.Fatalf("after send: step = %s sending = %v", st.Step, st.Sending)
	}
	verify, err := f.SubmitCode("12 34 56")
	if err != nil {
		t.Fatalf("SubmitCode() error = %v", err)
	}
	id, err := verify.Wait(waitCtx(t))
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	want := models.Identity{Role: models.RoleCitizen, Username: "USER#7777", DisplayName: "Citizen User"}
	if id != want {
		t.Errorf("identity = %+v, want %+v", id, want)
	}
	if got, ok := f.Identity(); !ok || got != want {
		t.Errorf("Identity() = %+v, %v", got, ok)
	}
	if f.Snapshot().Step != models.StepAuthenticated {
		t.Errorf("step = %s, want authenticated", f.Snapshot().Step)
	}
}

func TestLoginOfficerUsesEnteredName(t *testing.T) {
	s := newTestState(t, newTestBackend(Delays{}))
	if err := s.Login.SetName("Asha Verma"); err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	id := signIn(t, s, models.RoleOfficer)
	if !strings.HasPrefix(id.Username, "OFFICER#") || len(id.Username) != len("OFFICER#")+3 {
		t.Errorf("username = %q, want OFFICER# and 3 digits", id.Username)
	}
	if id.DisplayName != "Asha Verma" {
		t.Errorf("display name = %q", id.DisplayName)
	}
	if got := s.Page(); got != models.PageDashboard {
		t.Errorf("Page() = %s, want %s", got, models.PageDashboard)
	}
}

func TestSubmitCredentialValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"plain", "123456789012", true},
		{"spaced", "1234 5678 9012", true},
		{"too short", "1234", false},
		{"too long", "1234567890123", false},
		{"letters only", "abcdefghijkl", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLoginFlow(context.Background(), Delays{})
			_ = f.SelectRole(models.RoleCitizen)
			tk, err := f.SubmitCredential(tt.input)
			if !tt.ok {
				if !errors.Is(err, ErrInvalidCredential) {
					t.Fatalf("error = %v, want ErrInvalidCredential", err)
				}
				st := f.Snapshot()
				if st.Step != models.StepCredential || st.Sending || st.LastError == "" {
					t.Errorf("snapshot = %+v, want credential step with error", st)
				}
				return
			}
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if _, err := tk.Wait(waitCtx(t)); err != nil {
				t.Fatalf("Wait() error = %v", err)
			}
			if f.Snapshot().Step != models.StepCode {
				t.Errorf("step = %s, want code_verification", f.Snapshot().Step)
			}
		})
	}
}

func TestSubmitCodeValidation(t *testing.T) {
	f := NewLoginFlow(context.Background(), Delays{})
	_ = f.SelectRole(models.RoleCitizen)
	tk, _ := f.SubmitCredential("123456789012")
	_, _ = tk.Wait(waitCtx(t))

	if _, err := f.SubmitCode("12345"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("SubmitCode(5 digits) error = %v, want ErrInvalidCode", err)
	}
	if _, ok := f.Identity(); ok {
		t.Fatal("identity set after invalid code")
	}
	if f.Snapshot().Step != models.StepCode {
		t.Errorf("step = %s, want code_verification", f.Snapshot().Step)
	}
}

func TestLoginWrongStep(t *testing.T) {
	f := NewLoginFlow(context.Background(), Delays{})
	if _, err := f.SubmitCredential("123456789012"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("SubmitCredential before role: %v", err)
	}
	if _, err := f.SubmitCode("123456"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("SubmitCode before credential: %v", err)
	}
	if err := f.SelectRole("mayor"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("SelectRole(mayor) = %v", err)
	}
}

func TestBackFromCodeKeepsIdentifier(t *testing.T) {
	f := NewLoginFlow(context.Background(), Delays{})
	_ = f.SelectRole(models.RoleOfficer)
	tk, _ := f.SubmitCredential("123456789012")
	_, _ = tk.Wait(waitCtx(t))

	if err := f.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	st := f.Snapshot()
	if st.Step != models.StepCredential || st.Role != models.RoleOfficer {
		t.Fatalf("snapshot = %+v", st)
	}
	if st.Credential != "XXXX XXXX 9012" {
		t.Errorf("credential = %q, want masked identifier kept", st.Credential)
	}
	if !f.CredentialMatches("1234 5678 9012") || f.CredentialMatches("123456789013") {
		t.Error("CredentialMatches disagrees with the submitted identifier")
	}

	if err := f.Back(); err != nil {
		t.Fatalf("second Back() error = %v", err)
	}
	st = f.Snapshot()
	if st.Step != models.StepSelection || st.Role != "" || st.Credential != "" {
		t.Errorf("after full back: %+v", st)
	}
	if f.CredentialMatches("123456789012") {
		t.Error("identifier survives full back")
	}
}

func TestResubmitAfterBackResendsToSameIdentifier(t *testing.T) {
	f := NewLoginFlow(context.Background(), Delays{})
	_ = f.SelectRole(models.RoleCitizen)
	tk, _ := f.SubmitCredential("123456789012")
	st, err := tk.Wait(waitCtx(t))
	if err != nil {
		t.Fatalf("send Wait() error = %v", err)
	}
	if st.Resent {
		t.Fatal("first submit reported as resent")
	}

	_ = f.Back()
	tk, err = f.SubmitCredential("1234-5678-9012")
	if err != nil {
		t.Fatalf("resubmit error = %v", err)
	}
	if st, _ = tk.Wait(waitCtx(t)); st.Step != models.StepCode || !st.Resent {
		t.Fatalf("after resubmit = %+v, want code step and resent", st)
	}

	_ = f.Back()
	tk, _ = f.SubmitCredential("999988887777")
	st, _ = tk.Wait(waitCtx(t))
	if st.Resent || st.Credential != "XXXX XXXX 7777" {
		t.Fatalf("new identifier = %+v, want fresh send", st)
	}
	if !f.CredentialMatches("999988887777") || f.CredentialMatches("123456789012") {
		t.Error("stored hash does not follow the new identifier")
	}
}

func TestBackCancelsPendingSend(t *testing.T) {
	f := NewLoginFlow(context.Background(), Delays{Send: time.Hour})
	_ = f.SelectRole(models.RoleCitizen)
	tk, err := f.SubmitCredential("123456789012")
	if err != nil {
		t.Fatalf("SubmitCredential() error = %v", err)
	}
	if !f.Snapshot().Sending {
		t.Fatal("sending not set while send is pending")
	}
	if _, err := f.SubmitCredential("123456789012"); !errors.Is(err, ErrBusy) {
		t.Errorf("second submit error = %v, want ErrBusy", err)
	}
	if err := f.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if _, err := tk.Wait(waitCtx(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
	st := f.Snapshot()
	if st.Step != models.StepSelection || st.Sending {
		t.Errorf("snapshot after back = %+v", st)
	}
}

func TestLogoutClearsIdentity(t *testing.T) {
	s := newTestState(t, newTestBackend(Delays{}))
	signInCitizen(t, s)
	s.Logout()
	if _, ok := s.Login.Identity(); ok {
		t.Error("identity survives logout")
	}
	if _, ok := s.Municipality.Active(); ok {
		t.Error("municipality survives logout")
	}
	if got := s.Page(); got != models.PageLogin {
		t.Errorf("Page() = %s, want login", got)
	}
	if err := s.Login.Back(); err != nil {
		t.Errorf("Back() at selection = %v, want nil", err)
	}
}
