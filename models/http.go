package models

// Credentials is the JSON payload accepted by the register and login
// endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequest is the JSON payload accepted by the reset-token endpoint.
type ResetRequest struct {
	Email string `json:"email"`
}

// PasswordUpdate is the JSON payload accepted by the password-update
// endpoint. The reset token must match a pending reset request.
type PasswordUpdate struct {
	Email       string `json:"email"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}

// Message is a generic JSON response carrying a human-readable status line
// and, where relevant, the email the operation applied to.
type Message struct {
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// ResetResponse is returned by the reset-token endpoint. The token is
// handed to the caller directly; delivering it out of band (e.g. email)
// is not this service's job.
type ResetResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}
