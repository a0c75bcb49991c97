package api

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful authentication. IsVerified false
// signals the caller to route the user to the verification step.
type LoginResponse struct {
	Message    string `json:"message"`
	IsVerified bool   `json:"isVerified"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
