package dto

type RoleRequest struct {
	Role string `json:"role" example:"citizen"`
}

type NameRequest struct {
	Name string `json:"name" example:"Asha Verma"`
}

// CredentialRequest carries the 12-digit identifier. Spaces and dashes are
// ignored.
type CredentialRequest struct {
	Credential string `json:"credential" example:"1234 5678 9012"`
}

type CodeRequest struct {
	Code string `json:"code" example:"123456"`
}
