package repository

import (
	"fmt"
	"time"

	"webeat/internal/database"
	"webeat/internal/models"
)

// GuestbookRepository handles database operations for guestbook entries
type GuestbookRepository struct {
	db *database.DB
}

// NewGuestbookRepository creates a new guestbook repository
func NewGuestbookRepository(db *database.DB) *GuestbookRepository {
	return &GuestbookRepository{db: db}
}

// ListForOwners retrieves guestbook entries owned by any id in the scope set,
// newest first
func (r *GuestbookRepository) ListForOwners(ownerIDs []int64) ([]models.GuestbookEntry, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, author_name, message, created_at
		FROM guestbook_entries
		WHERE owner_id IN (%s)
		ORDER BY created_at DESC
	`, ownerPlaceholders(len(ownerIDs)))

	rows, err := r.db.Query(query, ownerArgs(ownerIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query guestbook entries: %w", err)
	}
	defer rows.Close()

	var entries []models.GuestbookEntry
	for rows.Next() {
		var entry models.GuestbookEntry
		if err := rows.Scan(
			&entry.ID, &entry.OwnerID, &entry.AuthorName, &entry.Message, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guestbook entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Create inserts a new guestbook entry attributed to ownerID
func (r *GuestbookRepository) Create(ownerID int64, authorName, message string) (*models.GuestbookEntry, error) {
	query := "INSERT INTO guestbook_entries (owner_id, author_name, message) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, ownerID, authorName, message)
	if err != nil {
		return nil, fmt.Errorf("failed to create guestbook entry: %w", err)
	}

	return &models.GuestbookEntry{
		ID:         id,
		OwnerID:    ownerID,
		AuthorName: authorName,
		Message:    message,
		CreatedAt:  time.Now(),
	}, nil
}

// DeleteForOwners deletes a guestbook entry visible to the scope set
func (r *GuestbookRepository) DeleteForOwners(id int64, ownerIDs []int64) (bool, error) {
	query := fmt.Sprintf(
		"DELETE FROM guestbook_entries WHERE id = ? AND owner_id IN (%s)",
		ownerPlaceholders(len(ownerIDs)),
	)

	args := append([]interface{}{id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete guestbook entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
