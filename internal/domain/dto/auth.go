package dto

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate the site administrator
// @Example {"email": "admin@export-go.com", "password": "password123"}
type LoginRequest struct {
	// Email is the administrator's email address.
	Email string `json:"email" binding:"required,email" example:"admin@export-go.com"`
	// Password is the administrator's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT access token
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// TokenType is always Bearer.
	TokenType string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name LoginResponse

// Claims represents the JWT claims carried by an access token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{
			Field:   "email",
			Message: "email is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
