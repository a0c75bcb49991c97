package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/instantchat/instantchat-api/pkg/verification"
)

// Handler exposes the verify and resend endpoints
type Handler struct {
	service *verification.Service
}

// NewHandler creates a new verification API handler
func NewHandler(service *verification.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Verify handles POST /verify
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Username == "" || req.Code == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Username and code are required"})
		return
	}

	err := h.service.Verify(r.Context(), req.Username, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrInvalidCode):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "Invalid verification code!"})
		case errors.Is(err, verification.ErrCodeExpired):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "Verification code has expired!"})
		default:
			slog.Error("Failed to verify email", "error", err)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, ErrorResponse{Error: "An error occurred while verifying email"})
		}
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, VerifyResponse{Message: "Email verified successfully!"})
}

// Resend handles POST /resend_verification
func (h *Handler) Resend(w http.ResponseWriter, r *http.Request) {
	var req ResendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Username == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Username is required"})
		return
	}

	err := h.service.Resend(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, verification.ErrUserNotFound) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "User not found!"})
			return
		}
		slog.Error("Failed to resend verification email", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "An error occurred while sending verification email"})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, ResendResponse{Message: "Verification email resent successfully!"})
}
