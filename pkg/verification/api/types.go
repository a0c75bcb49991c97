package api

// VerifyRequest represents the request to verify an email with a code
type VerifyRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

// VerifyResponse represents the response after email verification
type VerifyResponse struct {
	Message string `json:"message"`
}

// ResendRequest represents the request to resend a verification code
type ResendRequest struct {
	Username string `json:"username"`
}

// ResendResponse represents the response after resending a code
type ResendResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
