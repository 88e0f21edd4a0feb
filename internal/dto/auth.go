package dto

// ── auth DTOs ──

// LoginRequest is the partner login form submission.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the partner registration form submission.
type RegisterRequest struct {
	BusinessName string `json:"business_name" binding:"required,min=2,max=100"`
	Email        string `json:"email"         binding:"required,email"`
	Password     string `json:"password"      binding:"required,min=8,max=72"`
	Phone        string `json:"phone"`
}
