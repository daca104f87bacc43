package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"webeat/internal/models"
	"webeat/internal/repository"
	"webeat/internal/service"
	"webeat/internal/validation"
)

// InvitationCardHandler handles couple-scoped invitation card endpoints
type InvitationCardHandler struct {
	cardRepo      *repository.InvitationCardRepository
	coupleService *service.CoupleService
}

// NewInvitationCardHandler creates a new invitation card handler
func NewInvitationCardHandler(cardRepo *repository.InvitationCardRepository, coupleService *service.CoupleService) *InvitationCardHandler {
	return &InvitationCardHandler{
		cardRepo:      cardRepo,
		coupleService: coupleService,
	}
}

// ListCards returns invitation cards visible to the caller's scope set
func (h *InvitationCardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	cards, err := h.cardRepo.ListForOwners(scope)
	if err != nil {
		slog.Error("failed to list invitation cards", "error", err)
		cards = nil
	}
	if cards == nil {
		cards = []models.InvitationCard{}
	}

	respondJSON(w, http.StatusOK, map[string][]models.InvitationCard{"invitations": cards})
}

// CreateCard creates an invitation card attributed to the caller
func (h *InvitationCardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	var req struct {
		Title     string     `json:"title"`
		Theme     string     `json:"theme"`
		Message   string     `json:"message"`
		EventDate *time.Time `json:"eventDate"`
		Venue     string     `json:"venue"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondServiceError(w, err)
		return
	}
	if req.Theme == "" {
		req.Theme = "classic"
	}

	card, err := h.cardRepo.Create(user.ID, req.Title, req.Theme, req.Message, req.EventDate, req.Venue)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to create invitation card", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]*models.InvitationCard{"invitation": card})
}

// UpdateCard updates an invitation card visible to the caller's scope set
func (h *InvitationCardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invitation ID", "", nil)
		return
	}

	var req struct {
		Title     string     `json:"title"`
		Theme     string     `json:"theme"`
		Message   string     `json:"message"`
		EventDate *time.Time `json:"eventDate"`
		Venue     string     `json:"venue"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondServiceError(w, err)
		return
	}
	if req.Theme == "" {
		req.Theme = "classic"
	}

	scope := h.coupleService.ResolveScope(user.ID)
	updated, err := h.cardRepo.UpdateForOwners(id, scope, req.Title, req.Theme, req.Message, req.EventDate, req.Venue)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to update invitation card", err)
		return
	}
	if !updated {
		respondWithError(w, http.StatusNotFound, "Invitation not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteCard deletes an invitation card visible to the caller's scope set
func (h *InvitationCardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invitation ID", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	deleted, err := h.cardRepo.DeleteForOwners(id, scope)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to delete invitation card", err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "Invitation not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
