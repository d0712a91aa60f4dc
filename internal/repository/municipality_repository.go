package repository

import (
	"errors"
	"strings"

	"civic-reports/internal/models"
)

var ErrMunicipalityNotFound = errors.New("municipality not found")

var catalog = []models.Municipality{
	{ID: "ranchi", Name: "Ranchi", State: "Jharkhand", District: "Ranchi", Population: "11,26,741", Area: "652.06 km²"},
	{ID: "dhanbad", Name: "Dhanbad", State: "Jharkhand", District: "Dhanbad", Population: "12,06,804", Area: "204.8 km²"},
	{ID: "jamshedpur", Name: "Jamshedpur", State: "Jharkhand", District: "East Singhbhum", Population: "13,38,779", Area: "224 km²"},
	{ID: "bokaro", Name: "Bokaro Steel City", State: "Jharkhand", District: "Bokaro", Population: "5,11,167", Area: "183 km²"},
	{ID: "deoghar", Name: "Deoghar", State: "Jharkhand", District: "Deoghar", Population: "2,04,187", Area: "54.8 km²"},
	{ID: "hazaribagh", Name: "Hazaribagh", State: "Jharkhand", District: "Hazaribagh", Population: "1,53,596", Area: "42.8 km²"},
}

type officeContact struct {
	established, phone, mayor, commissioner, wards string
}

var contacts = map[string]officeContact{
	"ranchi": {established: "1956", phone: "+91-651-2460001", mayor: "श्री राज किशोर महतो", commissioner: "श्री अमित कुमार", wards: "55"},
}

type desk struct{ key, contact string }

var serviceDesks = []desk{
	{"info.service.water", "651-2460020"},
	{"info.service.light", "651-2460030"},
	{"info.service.waste", "651-2460040"},
	{"info.service.roads", "651-2460050"},
	{"info.service.health", "651-2460060"},
	{"info.service.education", "651-2460070"},
}

var departments = []struct{ key, head, contact string }{
	{"info.dept.admin", "श्री राजेश कुमार", "651-2460010"},
	{"info.dept.engineering", "श्री प्रीत सिंह", "651-2460080"},
	{"info.dept.revenue", "श्रीमती अनिता शर्मा", "651-2460090"},
	{"info.dept.health", "डॉ. सुनीत कुमार", "651-2460100"},
}

// MunicipalityRepository is the read-only municipal directory.
type MunicipalityRepository struct {
	items []models.Municipality
}

func NewMunicipalityRepository() *MunicipalityRepository {
	return &MunicipalityRepository{items: append([]models.Municipality{}, catalog...)}
}

// List applies the state filter and the name/district search together.
func (r *MunicipalityRepository) List(f models.MunicipalityFilter) []models.Municipality {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Municipality, 0, len(r.items))
	for _, m := range r.items {
		if f.State != "" && m.State != f.State {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.District), search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (r *MunicipalityRepository) Get(id string) (models.Municipality, error) {
	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Municipality{}, ErrMunicipalityNotFound
}

// States returns the distinct states of the directory in catalog order.
func (r *MunicipalityRepository) States() []string {
	var out []string
	seen := map[string]struct{}{}
	for _, m := range r.items {
		if _, ok := seen[m.State]; ok {
			continue
		}
		seen[m.State] = struct{}{}
		out = append(out, m.State)
	}
	return out
}

// Info builds the municipality info page. tr renders the service desk and
// department names in the caller's locale.
func (r *MunicipalityRepository) Info(id string, tr func(string) string) (models.MunicipalityInfo, error) {
	m, err := r.Get(id)
	if err != nil {
		return models.MunicipalityInfo{}, err
	}
	c := contacts[id]
	info := models.MunicipalityInfo{
		Municipality:    m,
		Established:     c.established,
		Website:         "www." + id + ".gov.in",
		Email:           "info@" + id + ".gov.in",
		Phone:           c.phone,
		EmergencyNumber: "100",
		Mayor:           c.mayor,
		Commissioner:    c.commissioner,
		Wards:           c.wards,
		OfficeHours:     "10:00 AM - 5:00 PM",
		WorkingDays:     "Monday - Friday",
	}
	for _, d := range serviceDesks {
		info.Services = append(info.Services, models.ServiceDesk{
			Title:       tr(d.key),
			Description: tr(d.key + ".desc"),
			Contact:     d.contact,
		})
	}
	for _, d := range departments {
		info.Departments = append(info.Departments, models.Department{
			Name:    tr(d.key),
			Head:    d.head,
			Contact: d.contact,
		})
	}
	return info, nil
}
