package dto

import "civic-reports/internal/models"

type SelectMunicipalityRequest struct {
	MunicipalityID string `json:"municipalityId" example:"ranchi"`
}

type MunicipalityListResponse struct {
	Municipalities []models.Municipality `json:"municipalities"`
	States         []string              `json:"states"`
}
