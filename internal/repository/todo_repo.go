package repository

import (
	"database/sql"
	"fmt"
	"time"

	"webeat/internal/database"
	"webeat/internal/models"
)

// TodoRepository handles database operations for todos
type TodoRepository struct {
	db *database.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *database.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// ListForOwners retrieves todos owned by any id in the scope set, newest first
func (r *TodoRepository) ListForOwners(ownerIDs []int64) ([]models.Todo, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, due_date, completed, created_at, updated_at
		FROM todos
		WHERE owner_id IN (%s)
		ORDER BY created_at DESC
	`, ownerPlaceholders(len(ownerIDs)))

	rows, err := r.db.Query(query, ownerArgs(ownerIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		var dueDate sql.NullTime
		if err := rows.Scan(
			&todo.ID, &todo.OwnerID, &todo.Title, &dueDate,
			&todo.Completed, &todo.CreatedAt, &todo.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		if dueDate.Valid {
			todo.DueDate = &dueDate.Time
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

// Create inserts a new todo attributed to ownerID
func (r *TodoRepository) Create(ownerID int64, title string, dueDate *time.Time) (*models.Todo, error) {
	query := "INSERT INTO todos (owner_id, title, due_date) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, ownerID, title, dueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return &models.Todo{
		ID:        id,
		OwnerID:   ownerID,
		Title:     title,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// UpdateForOwners updates a todo visible to the scope set
func (r *TodoRepository) UpdateForOwners(id int64, ownerIDs []int64, title string, dueDate *time.Time, completed bool) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE todos
		SET title = ?, due_date = ?, completed = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND owner_id IN (%s)
	`, ownerPlaceholders(len(ownerIDs)))

	args := append([]interface{}{title, dueDate, completed, id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteForOwners deletes a todo visible to the scope set
func (r *TodoRepository) DeleteForOwners(id int64, ownerIDs []int64) (bool, error) {
	query := fmt.Sprintf(
		"DELETE FROM todos WHERE id = ? AND owner_id IN (%s)",
		ownerPlaceholders(len(ownerIDs)),
	)

	args := append([]interface{}{id}, ownerArgs(ownerIDs)...)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
