package api

// AskRequest represents the request to generate a travel plan
type AskRequest struct {
	Prompt string `json:"prompt"`
}

// AskResponse represents the generated reply
type AskResponse struct {
	Response string `json:"response"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
