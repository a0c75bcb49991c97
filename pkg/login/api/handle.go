package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/instantchat/instantchat-api/pkg/login"
)

// Handler exposes the login endpoint
type Handler struct {
	service *login.Service
}

// NewHandler creates a new login API handler
func NewHandler(service *login.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Username == "" || req.Password == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Username and password are required"})
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, login.ErrInvalidCredentials) {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, ErrorResponse{Error: "Invalid username or password!"})
			return
		}
		slog.Error("Failed to log in user", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "An error occurred while logging in"})
		return
	}

	if !result.Verified {
		// Authenticated but gated: 200 with the verification flag cleared.
		render.Status(r, http.StatusOK)
		render.JSON(w, r, LoginResponse{
			Message:    "Please verify your email before logging in!",
			IsVerified: false,
		})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, LoginResponse{
		Message:    "Login successful!",
		IsVerified: true,
	})
}
