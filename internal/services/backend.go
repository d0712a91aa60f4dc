package services

import (
	"time"

	"civic-reports/internal/i18n"
	"civic-reports/internal/repository"
)

// Delays are the simulated latencies of the login and post flows.
type Delays struct {
	Send   time.Duration
	Verify time.Duration
	Submit time.Duration
	Save   time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Send:   2 * time.Second,
		Verify: 1500 * time.Millisecond,
		Submit: 1500 * time.Millisecond,
		Save:   time.Second,
	}
}

// Backend is what every session shares: the post store, the municipality
// catalog and the process settings.
type Backend struct {
	Posts          *repository.PostRepository
	Municipalities *repository.MunicipalityRepository
	Delays         Delays
	DefaultLocale  i18n.Locale
}

func NewBackend(posts *repository.PostRepository, municipalities *repository.MunicipalityRepository, delays Delays, locale i18n.Locale) *Backend {
	if posts == nil {
		posts = repository.NewPostRepository()
	}
	if municipalities == nil {
		municipalities = repository.NewMunicipalityRepository()
	}
	return &Backend{Posts: posts, Municipalities: municipalities, Delays: delays, DefaultLocale: locale}
}
