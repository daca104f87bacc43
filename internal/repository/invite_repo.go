package repository

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"webeat/internal/database"
	"webeat/internal/models"
)

// InviteRepository handles database operations for couple invites
type InviteRepository struct {
	db *database.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *database.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// GenerateInviteCode generates a random 12-character hex invite code.
// 6 random bytes give a 2^48 code space, enough for a single-use share link.
func (r *InviteRepository) GenerateInviteCode() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CreateInvite inserts a new pending invite with a fresh code
func (r *InviteRepository) CreateInvite(inviterID int64, mode string, inviterName *string) (*models.CoupleInvite, error) {
	code, err := r.GenerateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	query := `
		INSERT INTO couple_invites (user_id, invite_code, inviter_name, mode, status)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, inviterID, code, inviterName, mode, models.InviteStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	return &models.CoupleInvite{
		ID:          id,
		UserID:      inviterID,
		InviteCode:  code,
		InviterName: inviterName,
		Mode:        mode,
		Status:      models.InviteStatusPending,
		CreatedAt:   time.Now(),
	}, nil
}

// GetPendingInvite retrieves the pending invite for an (inviter, mode) pair,
// if one exists
func (r *InviteRepository) GetPendingInvite(inviterID int64, mode string) (*models.CoupleInvite, error) {
	query := `
		SELECT id, user_id, invite_code, inviter_name, mode, status, created_at
		FROM couple_invites
		WHERE user_id = ? AND mode = ? AND status = ?
	`
	return r.scanInvite(r.db.QueryRow(query, inviterID, mode, models.InviteStatusPending))
}

// GetInviteByCode retrieves an invite by its code
func (r *InviteRepository) GetInviteByCode(code string) (*models.CoupleInvite, error) {
	query := `
		SELECT id, user_id, invite_code, inviter_name, mode, status, created_at
		FROM couple_invites
		WHERE invite_code = ?
	`
	return r.scanInvite(r.db.QueryRow(query, code))
}

// GetInvitesByUser retrieves all invites created by a user, newest first
func (r *InviteRepository) GetInvitesByUser(userID int64) ([]models.CoupleInvite, error) {
	query := `
		SELECT id, user_id, invite_code, inviter_name, mode, status, created_at
		FROM couple_invites
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invites: %w", err)
	}
	defer rows.Close()

	var invites []models.CoupleInvite
	for rows.Next() {
		var invite models.CoupleInvite
		var inviterName sql.NullString
		if err := rows.Scan(
			&invite.ID, &invite.UserID, &invite.InviteCode,
			&inviterName, &invite.Mode, &invite.Status, &invite.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		if inviterName.Valid {
			invite.InviterName = &inviterName.String
		}
		invites = append(invites, invite)
	}

	return invites, rows.Err()
}

func (r *InviteRepository) scanInvite(row *sql.Row) (*models.CoupleInvite, error) {
	invite := &models.CoupleInvite{}
	var inviterName sql.NullString
	err := row.Scan(
		&invite.ID,
		&invite.UserID,
		&invite.InviteCode,
		&inviterName,
		&invite.Mode,
		&invite.Status,
		&invite.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	if inviterName.Valid {
		invite.InviterName = &inviterName.String
	}

	return invite, nil
}
