package repository

import (
	"database/sql"
	"fmt"
	"time"

	"webeat/internal/database"
	"webeat/internal/models"
)

// CoupleRepository handles database operations for couple pairings
type CoupleRepository struct {
	db *database.DB
}

// NewCoupleRepository creates a new couple repository
func NewCoupleRepository(db *database.DB) *CoupleRepository {
	return &CoupleRepository{db: db}
}

// GetCoupleForUser retrieves the couple a user belongs to, matching either
// side of the pairing. First match wins; returns nil when unpaired.
func (r *CoupleRepository) GetCoupleForUser(userID int64) (*models.Couple, error) {
	query := `
		SELECT id, user1_id, user2_id, created_at
		FROM couples
		WHERE user1_id = ? OR user2_id = ?
	`
	couple := &models.Couple{}
	err := r.db.QueryRow(query, userID, userID).Scan(
		&couple.ID,
		&couple.User1ID,
		&couple.User2ID,
		&couple.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get couple: %w", err)
	}

	return couple, nil
}

// PairFromInvite redeems an invite and establishes the couple in a single
// transaction. The pending -> accepted transition is a conditional update;
// a zero row count means the invite was already redeemed by a concurrent
// request and no couple row is created.
func (r *CoupleRepository) PairFromInvite(inviteID, inviterID, accepterID int64) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE couple_invites SET status = ? WHERE id = ? AND status = ?",
		models.InviteStatusAccepted, inviteID, models.InviteStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to accept invite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	_, err = tx.ExecReturningID(
		"INSERT INTO couples (user1_id, user2_id) VALUES (?, ?)",
		inviterID, accepterID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create couple: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// CreateCouple inserts a pairing directly. Used by tests and admin tooling;
// the normal path goes through PairFromInvite.
func (r *CoupleRepository) CreateCouple(user1ID, user2ID int64) (*models.Couple, error) {
	id, err := r.db.ExecReturningID(
		"INSERT INTO couples (user1_id, user2_id) VALUES (?, ?)",
		user1ID, user2ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create couple: %w", err)
	}

	return &models.Couple{
		ID:        id,
		User1ID:   user1ID,
		User2ID:   user2ID,
		CreatedAt: time.Now(),
	}, nil
}
