package models

import "time"

// Invite status values. An invite only ever moves pending -> accepted;
// there is no rejected, expired or cancelled state.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
)

// Feature-area modes an invite (and the resulting pairing) is scoped under.
const (
	ModeDating  = "dating"
	ModeWedding = "wedding"
	ModeFamily  = "family"
)

// DefaultInviterName is shown when neither a stored inviter name nor the
// inviter's first name is available. Korean for "the other person".
const DefaultInviterName = "상대방"

// Couple is a persisted pairing of exactly two users granting mutual data
// visibility. A user is assumed to belong to at most one couple.
type Couple struct {
	ID        int64     `json:"id"`
	User1ID   int64     `json:"user1Id"`
	User2ID   int64     `json:"user2Id"`
	CreatedAt time.Time `json:"createdAt"`
}

// PartnerOf returns the other side of the pairing, or false if the given
// user is not part of this couple.
func (c *Couple) PartnerOf(userID int64) (int64, bool) {
	switch userID {
	case c.User1ID:
		return c.User2ID, true
	case c.User2ID:
		return c.User1ID, true
	}
	return 0, false
}

// CoupleInvite is a pending offer to pair, redeemable once via its code.
type CoupleInvite struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	InviteCode  string    `json:"inviteCode"`
	InviterName *string   `json:"inviterName,omitempty"`
	Mode        string    `json:"mode"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsAccepted reports whether the invite has already been redeemed
func (i *CoupleInvite) IsAccepted() bool {
	return i.Status == InviteStatusAccepted
}

// ValidMode reports whether mode is one of the known feature areas
func ValidMode(mode string) bool {
	switch mode {
	case ModeDating, ModeWedding, ModeFamily:
		return true
	}
	return false
}
