package dto

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	NationalID    string `json:"nationalId" binding:"required,cnic"`
	Secret        string `json:"secret" binding:"required"`
	ConfirmSecret string `json:"confirmSecret" binding:"required,eqfield=Secret"`
}

// LoginRequest is the body of both login endpoints.
type LoginRequest struct {
	NationalID string `json:"nationalId" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// ChangeSecretRequest is the body of POST /me/secret.
type ChangeSecretRequest struct {
	Current string `json:"current" binding:"required"`
	New     string `json:"new" binding:"required"`
	Confirm string `json:"confirm" binding:"required"`
}
