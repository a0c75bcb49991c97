package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/instantchat/instantchat-api/pkg/signup"
)

// Handler exposes the registration endpoint
type Handler struct {
	service *signup.Service
}

// NewHandler creates a new signup API handler
func NewHandler(service *signup.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Register handles POST /signup
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Username, password and email are required"})
		return
	}

	result, err := h.service.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, signup.ErrAccountExists) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "Email already exists!"})
			return
		}
		slog.Error("Failed to register user", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "An error occurred while registering"})
		return
	}

	message := "User registered successfully! Please verify your email."
	if !result.EmailSent {
		message = "User registered, but the verification email could not be sent. Please request a new code."
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RegisterResponse{Message: message})
}
