package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"webeat/internal/models"
	"webeat/internal/repository"
	"webeat/internal/service"
)

// GuestbookHandler handles couple-scoped guestbook endpoints
type GuestbookHandler struct {
	guestbookRepo *repository.GuestbookRepository
	coupleService *service.CoupleService
}

// NewGuestbookHandler creates a new guestbook handler
func NewGuestbookHandler(guestbookRepo *repository.GuestbookRepository, coupleService *service.CoupleService) *GuestbookHandler {
	return &GuestbookHandler{
		guestbookRepo: guestbookRepo,
		coupleService: coupleService,
	}
}

// ListEntries returns guestbook entries visible to the caller's scope set
func (h *GuestbookHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	entries, err := h.guestbookRepo.ListForOwners(scope)
	if err != nil {
		slog.Error("failed to list guestbook entries", "error", err)
		entries = nil
	}
	if entries == nil {
		entries = []models.GuestbookEntry{}
	}

	respondJSON(w, http.StatusOK, map[string][]models.GuestbookEntry{"entries": entries})
}

// CreateEntry creates a guestbook entry attributed to the caller
func (h *GuestbookHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	var req struct {
		AuthorName string `json:"authorName"`
		Message    string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondWithError(w, http.StatusBadRequest, "message is required", "", nil)
		return
	}
	if req.AuthorName == "" {
		req.AuthorName = user.DisplayName()
	}

	entry, err := h.guestbookRepo.Create(user.ID, req.AuthorName, req.Message)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to create guestbook entry", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]*models.GuestbookEntry{"entry": entry})
}

// DeleteEntry deletes a guestbook entry visible to the caller's scope set
func (h *GuestbookHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid entry ID", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	deleted, err := h.guestbookRepo.DeleteForOwners(id, scope)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to delete guestbook entry", err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "Entry not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
