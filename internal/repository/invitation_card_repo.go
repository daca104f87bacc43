package repository

import (
	"database/sql"
	"fmt"
	"time"

	"webeat/internal/database"
	"webeat/internal/models"
)

// InvitationCardRepository handles database operations for invitation cards
type InvitationCardRepository struct {
	db *database.DB
}

// NewInvitationCardRepository creates a new invitation card repository
func NewInvitationCardRepository(db *database.DB) *InvitationCardRepository {
	return &InvitationCardRepository{db: db}
}

// ListForOwners retrieves invitation cards owned by any id in the scope set,
// newest first
func (r *InvitationCardRepository) ListForOwners(ownerIDs []int64) ([]models.InvitationCard, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, theme, message, event_date, venue, created_at, updated_at
		FROM invitation_cards
		WHERE owner_id IN (%s)
		ORDER BY created_at DESC
	`, ownerPlaceholders(len(ownerIDs)))

	rows, err := r.db.Query(query, ownerArgs(ownerIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invitation cards: %w", err)
	}
	defer rows.Close()

	var cards []models.InvitationCard
	for rows.Next() {
		var card models.InvitationCard
		var eventDate sql.NullTime
		if err := rows.Scan(
			&card.ID, &card.OwnerID, &card.Title, &card.Theme, &card.Message,
			&eventDate, &card.Venue, &card.CreatedAt, &card.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invitation card: %w", err)
		}
		if eventDate.Valid {
			card.EventDate = &eventDate.Time
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

// Create inserts a new invitation card attributed to ownerID
func (r *InvitationCardRepository) Create(ownerID int64, title, theme, message string, eventDate *time.Time, venue string) (*models.InvitationCard, error) {
	query := `
		INSERT INTO invitation_cards (owner_id, title, theme, message, event_date, venue)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, ownerID, title, theme, message, eventDate, venue)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation card: %w", err)
	}

	return &models.InvitationCard{
		ID:        id,
		OwnerID:   ownerID,
		Title:     title,
		Theme:     theme,
		Message:   message,
		EventDate: eventDate,
		Venue:     venue,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// UpdateForOwners updates an invitation card visible to the scope set
func (r *InvitationCardRepository) UpdateForOwners(id int64, ownerIDs []int64, title, theme, message string, eventDate *time.Time, venue string) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE invitation_cards
		SET title = ?, theme = ?, message = ?, event_date = ?, venue = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND owner_id IN (%s)
	`, ownerPlaceholders(len(ownerIDs)))

	args := append([]interface{}{title, theme, message, eventDate, venue, id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update invitation card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteForOwners deletes an invitation card visible to the scope set
func (r *InvitationCardRepository) DeleteForOwners(id int64, ownerIDs []int64) (bool, error) {
	query := fmt.Sprintf(
		"DELETE FROM invitation_cards WHERE id = ? AND owner_id IN (%s)",
		ownerPlaceholders(len(ownerIDs)),
	)

	args := append([]interface{}{id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete invitation card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
