package services

import (
	"errors"

	"civic-reports/internal/repository"
)

var (
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidCredential    = errors.New("identifier must have exactly 12 digits")
	ErrInvalidCode          = errors.New("code must have exactly 6 digits")
	ErrWrongStep            = errors.New("action not allowed in the current login step")
	ErrBusy                 = errors.New("a request is already in flight")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrForbidden            = errors.New("forbidden")
	ErrNothingStaged        = errors.New("no municipality selected")
	ErrNoDeleteRequest      = errors.New("delete was not requested for this post")
	ErrUnknownPage          = errors.New("unknown page")
	ErrSessionNotFound      = errors.New("session not found")
	ErrNoActiveMunicipality = errors.New("no active municipality")
)

var messageKeys = []struct {
	err error
	key string
}{
	{repository.ErrBlankTitle, "error.titleRequired"},
	{repository.ErrBlankContent, "error.contentRequired"},
	{repository.ErrBlankComment, "error.commentRequired"},
	{ErrInvalidCredential, "error.invalidCredential"},
	{ErrInvalidCode, "error.invalidCode"},
	{ErrNothingStaged, "error.selectMunicipality"},
	{ErrNoActiveMunicipality, "error.selectMunicipality"},
}

// MessageKey returns the i18n key describing err, or "" if there is none.
func MessageKey(err error) string {
	for _, m := range messageKeys {
		if errors.Is(err, m.err) {
			return m.key
		}
	}
	return ""
}

// Localize renders err for the user through tr, falling back to err.Error().
func Localize(err error, tr func(string) string) string {
	if err == nil {
		return ""
	}
	if key := MessageKey(err); key != "" {
		return tr(key)
	}
	return err.Error()
}
