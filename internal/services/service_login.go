package services

import (
	"context"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"civic-reports/internal/models"
	"civic-reports/internal/task"
	u "civic-reports/internal/utils"
)

const (
	credentialDigits = 12
	codeDigits       = 6

	citizenPrefix = "USER#"
	officerPrefix = "OFFICER#"
)

// LoginFlow is the three-step login wizard:
// selection -> credential_entry -> code_verification -> authenticated.
// Any well-formed credential and code succeed after the simulated delay.
type LoginFlow struct {
	mu     sync.Mutex
	ctx    context.Context
	delays Delays
	tasks  task.Group

	step      models.LoginStep
	role      models.Role
	name      string
	sending   bool
	verifying bool
	lastErr   error
	identity  *models.Identity

	// the raw identifier is never kept
	credentialHash   []byte
	credentialMasked string
	resent           bool

	randomDigits func(n int) (string, error)
}

func NewLoginFlow(ctx context.Context, delays Delays) *LoginFlow {
	return &LoginFlow{
		ctx:          ctx,
		delays:       delays,
		step:         models.StepSelection,
		randomDigits: u.RandomDigits,
	}
}

func (f *LoginFlow) SelectRole(r models.Role) error {
	if !r.Valid() {
		return ErrInvalidRole
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != models.StepSelection {
		return ErrWrongStep
	}
	f.role = r
	f.step = models.StepCredential
	f.lastErr = nil
	return nil
}

// SetName records the optional display name used once authenticated.
func (f *LoginFlow) SetName(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step == models.StepAuthenticated {
		return ErrWrongStep
	}
	f.name = name
	return nil
}

// SubmitCredential accepts any identifier with exactly 12 digits once
// non-digits are stripped, then moves to code_verification after the send
// delay. The returned task resolves to the state after the transition.
// Re-submitting the identifier kept after Back resends the code to it and
// reuses the stored hash.
func (f *LoginFlow) SubmitCredential(value string) (*task.Task[models.LoginState], error) {
	digits := u.OnlyDigits(value)

	f.mu.Lock()
	if err := f.checkCredentialStep(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	if len(digits) != credentialDigits {
		f.lastErr = ErrInvalidCredential
		f.mu.Unlock()
		return nil, ErrInvalidCredential
	}
	prev := f.credentialHash
	f.mu.Unlock()

	// bcrypt runs unlocked so snapshots are not held up by it
	hash, resent := prev, true
	if !hashMatches(prev, digits) {
		h, err := bcrypt.GenerateFromPassword([]byte(digits), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash, resent = h, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkCredentialStep(); err != nil {
		return nil, err
	}
	f.lastErr = nil
	f.credentialHash = hash
	f.credentialMasked = u.MaskDigits(digits, 4)
	f.resent = resent
	f.sending = true

	return task.Go(&f.tasks, f.ctx, f.delays.Send, func(ctx context.Context) (models.LoginState, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if err := ctx.Err(); err != nil {
			return models.LoginState{}, err
		}
		f.sending = false
		f.step = models.StepCode
		return f.snapshotLocked(), nil
	}), nil
}

func (f *LoginFlow) checkCredentialStep() error {
	if f.step != models.StepCredential {
		return ErrWrongStep
	}
	if f.sending {
		return ErrBusy
	}
	return nil
}

// SubmitCode accepts any 6-digit code and, after the verify delay,
// synthesises the session identity.
func (f *LoginFlow) SubmitCode(value string) (*task.Task[models.Identity], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != models.StepCode {
		return nil, ErrWrongStep
	}
	if f.verifying {
		return nil, ErrBusy
	}
	if len(u.OnlyDigits(value)) != codeDigits {
		f.lastErr = ErrInvalidCode
		return nil, ErrInvalidCode
	}
	f.lastErr = nil
	f.verifying = true

	return task.Go(&f.tasks, f.ctx, f.delays.Verify, func(ctx context.Context) (models.Identity, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if err := ctx.Err(); err != nil {
			return models.Identity{}, err
		}
		id, err := f.newIdentity()
		f.verifying = false
		if err != nil {
			f.lastErr = err
			return models.Identity{}, err
		}
		f.identity = &id
		f.step = models.StepAuthenticated
		log.Printf("login: %s signed in as %s", id.Role, id.Username)
		return id, nil
	}), nil
}

// newIdentity builds USER#dddd for citizens and OFFICER#ddd for officers.
// Two sessions may draw the same suffix; nothing prevents it.
func (f *LoginFlow) newIdentity() (models.Identity, error) {
	prefix, n, name := citizenPrefix, 4, "Citizen User"
	if f.role == models.RoleOfficer {
		prefix, n, name = officerPrefix, 3, "Officer User"
	}
	suffix, err := f.randomDigits(n)
	if err != nil {
		return models.Identity{}, err
	}
	if f.name != "" {
		name = f.name
	}
	return models.Identity{Role: f.role, Username: prefix + suffix, DisplayName: name}, nil
}

// Back steps one screen back and cancels any send or verify in flight.
// Leaving credential_entry forgets the role and identifier.
func (f *LoginFlow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.step {
	case models.StepCode:
		f.tasks.CancelAll()
		f.verifying = false
		f.step = models.StepCredential
	case models.StepCredential:
		f.tasks.CancelAll()
		f.sending = false
		f.clearCredential()
		f.name = ""
		f.role = ""
		f.step = models.StepSelection
	case models.StepAuthenticated:
		return ErrWrongStep
	}
	f.lastErr = nil
	return nil
}

// Logout drops the identity and returns the wizard to selection.
func (f *LoginFlow) Logout() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks.CancelAll()
	f.step = models.StepSelection
	f.role = ""
	f.clearCredential()
	f.name = ""
	f.sending = false
	f.verifying = false
	f.lastErr = nil
	f.identity = nil
}

func (f *LoginFlow) clearCredential() {
	f.credentialHash = nil
	f.credentialMasked = ""
	f.resent = false
}

// CredentialMatches reports whether value is the identifier last submitted.
func (f *LoginFlow) CredentialMatches(value string) bool {
	f.mu.Lock()
	hash := f.credentialHash
	f.mu.Unlock()
	return hashMatches(hash, u.OnlyDigits(value))
}

func hashMatches(hash []byte, digits string) bool {
	if hash == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(digits)) == nil
}

func (f *LoginFlow) Identity() (models.Identity, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.identity == nil {
		return models.Identity{}, false
	}
	return *f.identity, true
}

func (f *LoginFlow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *LoginFlow) Snapshot() models.LoginState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *LoginFlow) snapshotLocked() models.LoginState {
	st := models.LoginState{
		Step:       f.step,
		Role:       f.role,
		Credential: f.credentialMasked,
		Name:       f.name,
		Resent:     f.resent,
		Sending:    f.sending,
		Verifying:  f.verifying,
	}
	if f.lastErr != nil {
		st.LastError = f.lastErr.Error()
	}
	if f.identity != nil {
		id := *f.identity
		st.Identity = &id
	}
	return st
}
