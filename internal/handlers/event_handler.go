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

// EventHandler handles couple-scoped event endpoints
type EventHandler struct {
	eventRepo     *repository.EventRepository
	coupleService *service.CoupleService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventRepo *repository.EventRepository, coupleService *service.CoupleService) *EventHandler {
	return &EventHandler{
		eventRepo:     eventRepo,
		coupleService: coupleService,
	}
}

// ListEvents returns events visible to the caller's scope set. A failing
// query yields an empty list rather than a 5xx so the UI keeps rendering.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	events, err := h.eventRepo.ListForOwners(scope)
	if err != nil {
		slog.Error("failed to list events", "error", err)
		events = nil
	}
	if events == nil {
		events = []models.Event{}
	}

	respondJSON(w, http.StatusOK, map[string][]models.Event{"events": events})
}

// CreateEvent creates an event attributed to the caller
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	var req struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		EventDate   time.Time `json:"eventDate"`
		Location    string    `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondServiceError(w, err)
		return
	}
	if req.EventDate.IsZero() {
		respondWithError(w, http.StatusBadRequest, "eventDate is required", "", nil)
		return
	}

	event, err := h.eventRepo.Create(user.ID, req.Title, req.Description, req.EventDate, req.Location)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to create event", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]*models.Event{"event": event})
}

// UpdateEvent updates an event visible to the caller's scope set
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID", "", nil)
		return
	}

	var req struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		EventDate   time.Time `json:"eventDate"`
		Location    string    `json:"location"`
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
	updated, err := h.eventRepo.UpdateForOwners(id, scope, req.Title, req.Description, req.EventDate, req.Location)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to update event", err)
		return
	}
	if !updated {
		respondWithError(w, http.StatusNotFound, "Event not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteEvent deletes an event visible to the caller's scope set
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	deleted, err := h.eventRepo.DeleteForOwners(id, scope)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to delete event", err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "Event not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
