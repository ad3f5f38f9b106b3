package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest accepts a username or an email in login_id.
type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	Success      bool         `json:"success"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	UserType     string       `json:"user_type"`
	User         UserResponse `json:"user"`
}
