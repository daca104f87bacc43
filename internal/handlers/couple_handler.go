package handlers

import (
	"net/http"

	"webeat/internal/repository"
	"webeat/internal/service"
)

// CoupleHandler handles couple status endpoints
type CoupleHandler struct {
	coupleService *service.CoupleService
	userRepo      *repository.UserRepository
}

// NewCoupleHandler creates a new couple handler
func NewCoupleHandler(coupleService *service.CoupleService, userRepo *repository.UserRepository) *CoupleHandler {
	return &CoupleHandler{
		coupleService: coupleService,
		userRepo:      userRepo,
	}
}

// GetCouple returns the caller's pairing status and partner profile
func (h *CoupleHandler) GetCouple(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	couple, err := h.coupleService.GetCouple(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "failed to get couple", err)
		return
	}

	if couple == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"paired": false})
		return
	}

	response := map[string]interface{}{
		"paired": true,
		"couple": couple,
	}

	if partnerID, ok := couple.PartnerOf(user.ID); ok {
		partner, err := h.userRepo.GetUserByID(partnerID)
		if err == nil && partner != nil {
			response["partner"] = partner
		}
	}

	respondJSON(w, http.StatusOK, response)
}
