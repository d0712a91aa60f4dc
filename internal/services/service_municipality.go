package services

import (
	"sync"

	"civic-reports/internal/models"
	"civic-reports/internal/repository"
)

// MunicipalitySelection is the two-step pick: Select stages a candidate,
// Confirm makes it the active municipality of the session.
type MunicipalitySelection struct {
	mu     sync.Mutex
	repo   *repository.MunicipalityRepository
	staged *models.Municipality
	active *models.Municipality
}

func NewMunicipalitySelection(repo *repository.MunicipalityRepository) *MunicipalitySelection {
	return &MunicipalitySelection{repo: repo}
}

func (m *MunicipalitySelection) List(f models.MunicipalityFilter) []models.Municipality {
	return m.repo.List(f)
}

func (m *MunicipalitySelection) Select(id string) (models.Municipality, error) {
	mun, err := m.repo.Get(id)
	if err != nil {
		return models.Municipality{}, err
	}
	m.mu.Lock()
	m.staged = &mun
	m.mu.Unlock()
	return mun, nil
}

func (m *MunicipalitySelection) Confirm() (models.Municipality, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.staged == nil {
		return models.Municipality{}, ErrNothingStaged
	}
	m.active = m.staged
	m.staged = nil
	return *m.active, nil
}

// Change drops the active municipality so the selection page shows again.
// The previous choice stays staged.
func (m *MunicipalitySelection) Change() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		m.staged = m.active
	}
	m.active = nil
}

func (m *MunicipalitySelection) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staged = nil
	m.active = nil
}

func (m *MunicipalitySelection) Active() (models.Municipality, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return models.Municipality{}, false
	}
	return *m.active, true
}

func (m *MunicipalitySelection) Staged() (models.Municipality, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.staged == nil {
		return models.Municipality{}, false
	}
	return *m.staged, true
}
