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

// TodoHandler handles couple-scoped todo endpoints
type TodoHandler struct {
	todoRepo      *repository.TodoRepository
	coupleService *service.CoupleService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoRepo *repository.TodoRepository, coupleService *service.CoupleService) *TodoHandler {
	return &TodoHandler{
		todoRepo:      todoRepo,
		coupleService: coupleService,
	}
}

// ListTodos returns todos visible to the caller's scope set
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	todos, err := h.todoRepo.ListForOwners(scope)
	if err != nil {
		slog.Error("failed to list todos", "error", err)
		todos = nil
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	respondJSON(w, http.StatusOK, map[string][]models.Todo{"todos": todos})
}

// CreateTodo creates a todo attributed to the caller
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	var req struct {
		Title   string     `json:"title"`
		DueDate *time.Time `json:"dueDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondServiceError(w, err)
		return
	}

	todo, err := h.todoRepo.Create(user.ID, req.Title, req.DueDate)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to create todo", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]*models.Todo{"todo": todo})
}

// UpdateTodo updates a todo visible to the caller's scope set
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID", "", nil)
		return
	}

	var req struct {
		Title     string     `json:"title"`
		DueDate   *time.Time `json:"dueDate"`
		Completed bool       `json:"completed"`
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
	updated, err := h.todoRepo.UpdateForOwners(id, scope, req.Title, req.DueDate, req.Completed)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to update todo", err)
		return
	}
	if !updated {
		respondWithError(w, http.StatusNotFound, "Todo not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteTodo deletes a todo visible to the caller's scope set
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID", "", nil)
		return
	}

	scope := h.coupleService.ResolveScope(user.ID)
	deleted, err := h.todoRepo.DeleteForOwners(id, scope)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to delete todo", err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "Todo not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
