package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"webeat/internal/models"
	"webeat/internal/service"
)

// InviteHandler handles couple invite endpoints
type InviteHandler struct {
	coupleService *service.CoupleService
	emailService  *service.EmailService
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(coupleService *service.CoupleService, emailService *service.EmailService) *InviteHandler {
	return &InviteHandler{
		coupleService: coupleService,
		emailService:  emailService,
	}
}

// CreateInvite creates (or returns the existing pending) invite for the
// caller and mode. If a partner email is provided the code is mailed to
// them, best effort.
func (h *InviteHandler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	var req struct {
		Mode         string `json:"mode"`
		InviterName  string `json:"inviterName"`
		PartnerEmail string `json:"partnerEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	invite, err := h.coupleService.CreateInvite(user.ID, req.Mode, req.InviterName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if req.PartnerEmail != "" {
		inviterName := req.InviterName
		if inviterName == "" {
			inviterName = user.DisplayName()
		}
		if err := h.emailService.SendInviteEmail(r.Context(), req.PartnerEmail, inviterName, invite.Mode, invite.InviteCode); err != nil {
			slog.Warn("failed to send invite email", "error", err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]*models.CoupleInvite{"invite": invite})
}

// ListInvites returns all invites created by the caller
func (h *InviteHandler) ListInvites(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	invites, err := h.coupleService.GetUserInvites(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if invites == nil {
		invites = []models.CoupleInvite{}
	}
	respondJSON(w, http.StatusOK, map[string][]models.CoupleInvite{"invites": invites})
}

// LookupInvite previews an invite by code. No auth: invite landing pages
// call this before the partner has an account.
func (h *InviteHandler) LookupInvite(w http.ResponseWriter, r *http.Request) {
	lookup, err := h.coupleService.LookupInvite(r.URL.Query().Get("code"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]*service.InviteLookup{"invite": lookup})
}

// AcceptInvite redeems an invite code for the caller, pairing them with the
// inviter
func (h *InviteHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	var req struct {
		InviteCode string `json:"inviteCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	result, err := h.coupleService.AcceptInvite(user.ID, req.InviteCode)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"invite":  result,
	})
}
