package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"webeat/internal/models"
	"webeat/internal/repository"
	"webeat/internal/validation"
)

var (
	ErrCodeRequired          = errors.New("invite code is required")
	ErrInviteNotFound        = errors.New("invite not found")
	ErrInviteAlreadyAccepted = errors.New("invite already accepted")
	ErrSelfAccept            = errors.New("cannot accept your own invite")
)

// CoupleService handles couple pairing: invite lifecycle and shared-scope
// resolution. Every couple-scoped feature resolves visibility through it.
type CoupleService struct {
	inviteRepo *repository.InviteRepository
	coupleRepo *repository.CoupleRepository
	userRepo   *repository.UserRepository
}

// NewCoupleService creates a new couple service
func NewCoupleService(inviteRepo *repository.InviteRepository, coupleRepo *repository.CoupleRepository, userRepo *repository.UserRepository) *CoupleService {
	return &CoupleService{
		inviteRepo: inviteRepo,
		coupleRepo: coupleRepo,
		userRepo:   userRepo,
	}
}

// InviteLookup is the public view of an invite on the lookup/accept paths
type InviteLookup struct {
	InviteCode  string `json:"inviteCode"`
	Mode        string `json:"mode"`
	InviterName string `json:"inviterName"`
	Status      string `json:"status"`
}

// AcceptResult is returned on a successful invite acceptance
type AcceptResult struct {
	Mode        string `json:"mode"`
	InviterName string `json:"inviterName"`
	InviterID   int64  `json:"inviterId"`
}

// CreateInvite creates a pending invite for (inviter, mode), or returns the
// existing pending invite unchanged so an inviter never accumulates multiple
// outstanding codes for the same feature area.
func (s *CoupleService) CreateInvite(inviterID int64, mode, inviterName string) (*models.CoupleInvite, error) {
	if err := validation.ValidateMode(mode); err != nil {
		return nil, err
	}

	existing, err := s.inviteRepo.GetPendingInvite(inviterID, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invite: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	var namePtr *string
	if name := strings.TrimSpace(inviterName); name != "" {
		namePtr = &name
	}

	invite, err := s.inviteRepo.CreateInvite(inviterID, mode, namePtr)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	return invite, nil
}

// GetUserInvites retrieves all invites created by a user
func (s *CoupleService) GetUserInvites(userID int64) ([]models.CoupleInvite, error) {
	invites, err := s.inviteRepo.GetInvitesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invites: %w", err)
	}
	return invites, nil
}

// LookupInvite resolves an invite by code without mutating it, so landing
// pages can call it repeatedly.
func (s *CoupleService) LookupInvite(code string) (*InviteLookup, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrCodeRequired
	}

	invite, err := s.inviteRepo.GetInviteByCode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invite: %w", err)
	}
	if invite == nil {
		return nil, ErrInviteNotFound
	}

	return &InviteLookup{
		InviteCode:  invite.InviteCode,
		Mode:        invite.Mode,
		InviterName: s.resolveInviterName(invite),
		Status:      invite.Status,
	}, nil
}

// AcceptInvite redeems an invite for the accepter and establishes the couple
// pairing. The pending -> accepted transition and the couple row creation
// happen in one transaction; the transition is conditional so two racing
// accepts cannot both succeed.
func (s *CoupleService) AcceptInvite(accepterID int64, code string) (*AcceptResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrCodeRequired
	}

	invite, err := s.inviteRepo.GetInviteByCode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invite: %w", err)
	}
	if invite == nil {
		return nil, ErrInviteNotFound
	}

	// Already-accepted is checked before self-accept: an inviter retrying a
	// redeemed code sees the conflict, not the self-accept error.
	if invite.IsAccepted() {
		return nil, ErrInviteAlreadyAccepted
	}
	if invite.UserID == accepterID {
		return nil, ErrSelfAccept
	}

	accepted, err := s.coupleRepo.PairFromInvite(invite.ID, invite.UserID, accepterID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept invite: %w", err)
	}
	if !accepted {
		// Lost the race against a concurrent accept of the same code
		return nil, ErrInviteAlreadyAccepted
	}

	return &AcceptResult{
		Mode:        invite.Mode,
		InviterName: s.resolveInviterName(invite),
		InviterID:   invite.UserID,
	}, nil
}

// ResolveScope returns the set of user ids sharing data visibility with
// userID: the user alone, or both partners when paired. Lookup failure
// degrades to single-user scope instead of failing the caller; losing shared
// visibility is acceptable, blocking the request is not.
func (s *CoupleService) ResolveScope(userID int64) []int64 {
	couple, err := s.coupleRepo.GetCoupleForUser(userID)
	if err != nil {
		slog.Warn("couple lookup failed, falling back to single-user scope",
			"user_id", userID, "error", err)
		return []int64{userID}
	}
	if couple == nil {
		return []int64{userID}
	}
	return []int64{couple.User1ID, couple.User2ID}
}

// ResolvePartner returns the id of the user's partner, or false when
// unpaired or when the lookup fails
func (s *CoupleService) ResolvePartner(userID int64) (int64, bool) {
	couple, err := s.coupleRepo.GetCoupleForUser(userID)
	if err != nil {
		slog.Warn("partner lookup failed", "user_id", userID, "error", err)
		return 0, false
	}
	if couple == nil {
		return 0, false
	}
	return couple.PartnerOf(userID)
}

// GetCouple retrieves the couple record for a user, or nil when unpaired
func (s *CoupleService) GetCouple(userID int64) (*models.Couple, error) {
	couple, err := s.coupleRepo.GetCoupleForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get couple: %w", err)
	}
	return couple, nil
}

// resolveInviterName resolves the display name shown with an invite:
// stored inviter name, else the inviter's first name, else "상대방".
func (s *CoupleService) resolveInviterName(invite *models.CoupleInvite) string {
	if invite.InviterName != nil && *invite.InviterName != "" {
		return *invite.InviterName
	}

	inviter, err := s.userRepo.GetUserByID(invite.UserID)
	if err != nil {
		slog.Warn("inviter lookup failed", "invite_id", invite.ID, "error", err)
	}
	if inviter != nil && inviter.FirstName != "" {
		return inviter.FirstName
	}

	return models.DefaultInviterName
}
