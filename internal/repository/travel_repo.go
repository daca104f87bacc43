package repository

import (
	"database/sql"
	"fmt"
	"time"

	"webeat/internal/database"
	"webeat/internal/models"
)

// TravelRepository handles database operations for travels and their photos
type TravelRepository struct {
	db *database.DB
}

// NewTravelRepository creates a new travel repository
func NewTravelRepository(db *database.DB) *TravelRepository {
	return &TravelRepository{db: db}
}

// ListForOwners retrieves travels owned by any id in the scope set, newest
// first. Each row is enriched with its photo count via a per-row query.
func (r *TravelRepository) ListForOwners(ownerIDs []int64) ([]models.Travel, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, destination, start_date, end_date, notes, created_at, updated_at
		FROM travels
		WHERE owner_id IN (%s)
		ORDER BY created_at DESC
	`, ownerPlaceholders(len(ownerIDs)))

	rows, err := r.db.Query(query, ownerArgs(ownerIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query travels: %w", err)
	}
	defer rows.Close()

	var travels []models.Travel
	for rows.Next() {
		travel, err := scanTravel(rows)
		if err != nil {
			return nil, err
		}
		travels = append(travels, *travel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range travels {
		count, err := r.CountPhotos(travels[i].ID)
		if err != nil {
			return nil, err
		}
		travels[i].PhotoCount = count
	}

	return travels, nil
}

// GetForOwners retrieves a single travel if it is visible to the scope set
func (r *TravelRepository) GetForOwners(id int64, ownerIDs []int64) (*models.Travel, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, destination, start_date, end_date, notes, created_at, updated_at
		FROM travels
		WHERE id = ? AND owner_id IN (%s)
	`, ownerPlaceholders(len(ownerIDs)))

	args := append([]interface{}{id}, ownerArgs(ownerIDs)...)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get travel: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return scanTravel(rows)
}

// Create inserts a new travel attributed to ownerID
func (r *TravelRepository) Create(ownerID int64, title, destination string, startDate, endDate *time.Time, notes string) (*models.Travel, error) {
	query := `
		INSERT INTO travels (owner_id, title, destination, start_date, end_date, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, ownerID, title, destination, startDate, endDate, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create travel: %w", err)
	}

	return &models.Travel{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Notes:       notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// UpdateForOwners updates a travel visible to the scope set
func (r *TravelRepository) UpdateForOwners(id int64, ownerIDs []int64, title, destination string, startDate, endDate *time.Time, notes string) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE travels
		SET title = ?, destination = ?, start_date = ?, end_date = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND owner_id IN (%s)
	`, ownerPlaceholders(len(ownerIDs)))

	args := append([]interface{}{title, destination, startDate, endDate, notes, id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update travel: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteForOwners deletes a travel visible to the scope set
func (r *TravelRepository) DeleteForOwners(id int64, ownerIDs []int64) (bool, error) {
	query := fmt.Sprintf(
		"DELETE FROM travels WHERE id = ? AND owner_id IN (%s)",
		ownerPlaceholders(len(ownerIDs)),
	)

	args := append([]interface{}{id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete travel: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// AddPhoto records a photo URL against a travel
func (r *TravelRepository) AddPhoto(travelID int64, photoURL string) (*models.TravelPhoto, error) {
	id, err := r.db.ExecReturningID(
		"INSERT INTO travel_photos (travel_id, photo_url) VALUES (?, ?)",
		travelID, photoURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add photo: %w", err)
	}

	return &models.TravelPhoto{
		ID:        id,
		TravelID:  travelID,
		PhotoURL:  photoURL,
		CreatedAt: time.Now(),
	}, nil
}

// CountPhotos returns the number of photos attached to a travel
func (r *TravelRepository) CountPhotos(travelID int64) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM travel_photos WHERE travel_id = ?", travelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

func scanTravel(rows *sql.Rows) (*models.Travel, error) {
	travel := &models.Travel{}
	var startDate, endDate sql.NullTime
	if err := rows.Scan(
		&travel.ID, &travel.OwnerID, &travel.Title, &travel.Destination,
		&startDate, &endDate, &travel.Notes, &travel.CreatedAt, &travel.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan travel: %w", err)
	}
	if startDate.Valid {
		travel.StartDate = &startDate.Time
	}
	if endDate.Valid {
		travel.EndDate = &endDate.Time
	}
	return travel, nil
}
