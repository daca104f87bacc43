package models

import "time"

// Travel is a couple-scoped trip record
type Travel struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"ownerId"`
	Title       string     `json:"title"`
	Destination string     `json:"destination"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Notes       string     `json:"notes"`
	PhotoCount  int        `json:"photoCount"` // populated on list reads
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TravelPhoto is a photo attached to a travel record
type TravelPhoto struct {
	ID        int64     `json:"id"`
	TravelID  int64     `json:"travelId"`
	PhotoURL  string    `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
