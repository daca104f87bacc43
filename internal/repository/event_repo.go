package repository

import (
	"database/sql"
	"fmt"
	"time"

	"webeat/internal/database"
	"webeat/internal/models"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *database.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListForOwners retrieves events owned by any id in the scope set, newest first
func (r *EventRepository) ListForOwners(ownerIDs []int64) ([]models.Event, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, description, event_date, location, created_at, updated_at
		FROM events
		WHERE owner_id IN (%s)
		ORDER BY event_date DESC
	`, ownerPlaceholders(len(ownerIDs)))

	rows, err := r.db.Query(query, ownerArgs(ownerIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID, &event.OwnerID, &event.Title, &event.Description,
			&event.EventDate, &event.Location, &event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// GetForOwners retrieves a single event if it is visible to the scope set
func (r *EventRepository) GetForOwners(id int64, ownerIDs []int64) (*models.Event, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, description, event_date, location, created_at, updated_at
		FROM events
		WHERE id = ? AND owner_id IN (%s)
	`, ownerPlaceholders(len(ownerIDs)))

	args := append([]interface{}{id}, ownerArgs(ownerIDs)...)
	event := &models.Event{}
	err := r.db.QueryRow(query, args...).Scan(
		&event.ID, &event.OwnerID, &event.Title, &event.Description,
		&event.EventDate, &event.Location, &event.CreatedAt, &event.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// Create inserts a new event attributed to ownerID
func (r *EventRepository) Create(ownerID int64, title, description string, eventDate time.Time, location string) (*models.Event, error) {
	query := `
		INSERT INTO events (owner_id, title, description, event_date, location)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, ownerID, title, description, eventDate, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &models.Event{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		EventDate:   eventDate,
		Location:    location,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// UpdateForOwners updates an event visible to the scope set. Returns false
// when no visible row matched.
func (r *EventRepository) UpdateForOwners(id int64, ownerIDs []int64, title, description string, eventDate time.Time, location string) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE events
		SET title = ?, description = ?, event_date = ?, location = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND owner_id IN (%s)
	`, ownerPlaceholders(len(ownerIDs)))

	args := append([]interface{}{title, description, eventDate, location, id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteForOwners deletes an event visible to the scope set
func (r *EventRepository) DeleteForOwners(id int64, ownerIDs []int64) (bool, error) {
	query := fmt.Sprintf(
		"DELETE FROM events WHERE id = ? AND owner_id IN (%s)",
		ownerPlaceholders(len(ownerIDs)),
	)

	args := append([]interface{}{id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
