package models

type Municipality struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	State      string `json:"state"`
	District   string `json:"district"`
	Population string `json:"population"`
	Area       string `json:"area"`
}

// MunicipalityFilter: empty fields do not filter.
type MunicipalityFilter struct {
	State  string
	Search string
}

type ServiceDesk struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

type Department struct {
	Name    string `json:"name"`
	Head    string `json:"head"`
	Contact string `json:"contact"`
}

type MunicipalityInfo struct {
	Municipality    Municipality  `json:"municipality"`
	Established     string        `json:"established"`
	Website         string        `json:"website"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	EmergencyNumber string        `json:"emergencyNumber"`
	Mayor           string        `json:"mayor"`
	Commissioner    string        `json:"commissioner"`
	Wards           string        `json:"wards"`
	OfficeHours     string        `json:"officeHours"`
	WorkingDays     string        `json:"workingDays"`
	Services        []ServiceDesk `json:"services"`
	Departments     []Department  `json:"departments"`
}
