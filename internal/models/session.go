package models

type Role string

const (
	RoleCitizen Role = "citizen"
	RoleOfficer Role = "officer"
)

func (r Role) Valid() bool {
	return r == RoleCitizen || r == RoleOfficer
}

type LoginStep string

const (
	StepSelection     LoginStep = "selection"
	StepCredential    LoginStep = "credential_entry"
	StepCode          LoginStep = "code_verification"
	StepAuthenticated LoginStep = "authenticated"
)

// Identity is generated once at successful login and lives as long as the
// in-memory session does.
type Identity struct {
	Role        Role   `json:"role"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type LoginState struct {
	Step       LoginStep `json:"step"`
	Role       Role      `json:"role,omitempty"`
	Credential string    `json:"credential,omitempty"`
	Name       string    `json:"name,omitempty"`
	Resent     bool      `json:"resent"`
	Sending    bool      `json:"sending"`
	Verifying  bool      `json:"verifying"`
	LastError  string    `json:"lastError,omitempty"`
	Identity   *Identity `json:"identity,omitempty"`
}

type Profile struct {
	Identity         Identity      `json:"identity"`
	Municipality     *Municipality `json:"municipality,omitempty"`
	ReportsSubmitted int           `json:"reportsSubmitted"`
	UpvotesReceived  int           `json:"upvotesReceived"`
	CommentsReceived int           `json:"commentsReceived"`
	IssuesResolved   int           `json:"issuesResolved"`
}
