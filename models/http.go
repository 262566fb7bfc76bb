package models

// Request and response bodies of the HTTP API. Kept separate from the domain
// entities so that wire-level field requirements (e.g. plaintext password on
// registration) never leak into persisted types.

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/auth/profile.
// Empty fields are left unchanged; the password cannot be updated here.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
// Token is the plaintext reset secret previously returned by
// forgot-password; it is the sole credential for this operation.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// AuthResponse is the data payload returned by register, login, profile
// update and reset completion. Token holds a freshly issued session JWT.
type AuthResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// ResetTokenResponse is the data payload of a successful forgot-password
// call. The plaintext secret is handed to the caller so that an external
// notifier can deliver it out-of-band; only its hash is stored.
type ResetTokenResponse struct {
	ResetToken string `json:"resetToken"`
}

// VerifyResetTokenResponse is the data payload of a successful
// verify-reset-token call. The email is returned for display purposes only.
type VerifyResetTokenResponse struct {
	Email string `json:"email"`
}
