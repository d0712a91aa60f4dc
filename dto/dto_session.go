package dto

import "time"

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	SessionID   string    `json:"sessionId" example:"5f0c9a1e-3b8e-4a55-9c1d-2f1f0c3b7a10"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type NavigateRequest struct {
	Page string `json:"page" example:"home"`
}

type LocaleRequest struct {
	Locale string `json:"locale" example:"hi"`
}

type I18nResponse struct {
	Locale   string            `json:"locale"`
	Messages map[string]string `json:"messages"`
}

type TranslationResponse struct {
	Key   string `json:"key"   example:"nav.home"`
	Value string `json:"value" example:"Home"`
}

// ===== Error Response =====
type ErrorResponse struct {
	Error string `json:"error" example:"invalid body"`
}
