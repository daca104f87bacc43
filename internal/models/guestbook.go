package models

import "time"

// GuestbookEntry is a message left in a couple's guestbook
type GuestbookEntry struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"ownerId"`
	AuthorName string    `json:"authorName"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
