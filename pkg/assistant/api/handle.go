package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/instantchat/instantchat-api/pkg/assistant"
)

// Handler exposes the text-generation proxy endpoint
type Handler struct {
	service *assistant.Service
}

// NewHandler creates a new assistant API handler
func NewHandler(service *assistant.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Ask handles POST /ask
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	reply, err := h.service.Ask(r.Context(), req.Prompt)
	if err != nil {
		slog.Error("Failed to generate response", "error", err)
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, ErrorResponse{Error: "Failed to generate a response"})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, AskResponse{Response: reply})
}
