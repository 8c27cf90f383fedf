package dto

// SignupRequest represents a new credential registration
type SignupRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse represents the created credential identity. The password
// hash is never echoed back.
type SignupResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login with its session token
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
