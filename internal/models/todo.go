package models

import "time"

// Todo is a couple-scoped checklist item
type Todo struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"ownerId"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
