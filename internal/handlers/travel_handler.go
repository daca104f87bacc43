package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"webeat/internal/models"
	"webeat/internal/repository"
	"webeat/internal/service"
	"webeat/internal/validation"
)

// TravelHandler handles couple-scoped travel endpoints
type TravelHandler struct {
	travelRepo    *repository.TravelRepository
	coupleService *service.CoupleService
}

// NewTravelHandler creates a new travel handler
func NewTravelHandler(travelRepo *repository.TravelRepository, coupleService *service.CoupleService) *TravelHandler {
	return &TravelHandler{
		travelRepo:    travelRepo,
		coupleService: coupleService,
	}
}

// ListTravels returns travels visible to the caller's scope set, each with
// its photo count
func (h *TravelHandler) ListTravels(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	travels, err := h.travelRepo.ListForOwners(scope)
	if err != nil {
		slog.Error("failed to list travels", "error", err)
		travels = nil
	}
	if travels == nil {
		travels = []models.Travel{}
	}

	respondJSON(w, http.StatusOK, map[string][]models.Travel{"travels": travels})
}

// CreateTravel creates a travel attributed to the caller
func (h *TravelHandler) CreateTravel(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	var req struct {
		Title       string     `json:"title"`
		Destination string     `json:"destination"`
		StartDate   *time.Time `json:"startDate"`
		EndDate     *time.Time `json:"endDate"`
		Notes       string     `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondServiceError(w, err)
		return
	}

	travel, err := h.travelRepo.Create(user.ID, req.Title, req.Destination, req.StartDate, req.EndDate, req.Notes)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to create travel", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]*models.Travel{"travel": travel})
}

// UpdateTravel updates a travel visible to the caller's scope set
func (h *TravelHandler) UpdateTravel(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid travel ID", "", nil)
		return
	}

	var req struct {
		Title       string     `json:"title"`
		Destination string     `json:"destination"`
		StartDate   *time.Time `json:"startDate"`
		EndDate     *time.Time `json:"endDate"`
		Notes       string     `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondServiceError(w, err)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	updated, err := h.travelRepo.UpdateForOwners(id, scope, req.Title, req.Destination, req.StartDate, req.EndDate, req.Notes)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to update travel", err)
		return
	}
	if !updated {
		respondWithError(w, http.StatusNotFound, "Travel not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteTravel deletes a travel visible to the caller's scope set
func (h *TravelHandler) DeleteTravel(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid travel ID", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	deleted, err := h.travelRepo.DeleteForOwners(id, scope)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to delete travel", err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "Travel not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// AddPhoto records a photo URL against a travel visible to the caller's
// scope set
func (h *TravelHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid travel ID", "", nil)
		return
	}

	var req struct {
		PhotoURL string `json:"photoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}
	if strings.TrimSpace(req.PhotoURL) == "" {
		respondWithError(w, http.StatusBadRequest, "photoUrl is required", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	travel, err := h.travelRepo.GetForOwners(id, scope)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to get travel", err)
		return
	}
	if travel == nil {
		respondWithError(w, http.StatusNotFound, "Travel not found", "", nil)
		return
	}

	photo, err := h.travelRepo.AddPhoto(travel.ID, req.PhotoURL)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to add photo", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]*models.TravelPhoto{"photo": photo})
}
