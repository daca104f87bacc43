package models

import "time"

// InvitationCard is a shareable wedding/event invitation letter created by
// a couple. Not to be confused with CoupleInvite, which pairs two accounts.
type InvitationCard struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"ownerId"`
	Title     string     `json:"title"`
	Theme     string     `json:"theme"`
	Message   string     `json:"message"`
	EventDate *time.Time `json:"eventDate,omitempty"`
	Venue     string     `json:"venue"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
