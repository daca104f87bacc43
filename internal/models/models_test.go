package models

import "testing"

func TestPartnerOf(t *testing.T) {
	couple := &Couple{ID: 1, User1ID: 10, User2ID: 20}

	tests := []struct {
		name        string
		userID      int64
		wantPartner int64
		wantOK      bool
	}{
		{
			name:        "first side",
			userID:      10,
			wantPartner: 20,
			wantOK:      true,
		},
		{
			name:        "second side",
			userID:      20,
			wantPartner: 10,
			wantOK:      true,
		},
		{
			name:        "not a member",
			userID:      30,
			wantPartner: 0,
			wantOK:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partner, ok := couple.PartnerOf(tt.userID)
			if partner != tt.wantPartner || ok != tt.wantOK {
				t.Errorf("PartnerOf(%d) = (%d, %v), want (%d, %v)",
					tt.userID, partner, ok, tt.wantPartner, tt.wantOK)
			}
		})
	}
}

func TestInviteIsAccepted(t *testing.T) {
	pending := &CoupleInvite{Status: InviteStatusPending}
	if pending.IsAccepted() {
		t.Error("pending invite should not report accepted")
	}

	accepted := &CoupleInvite{Status: InviteStatusAccepted}
	if !accepted.IsAccepted() {
		t.Error("accepted invite should report accepted")
	}
}

func TestValidMode(t *testing.T) {
	valid := []string{ModeDating, ModeWedding, ModeFamily}
	for _, mode := range valid {
		if !ValidMode(mode) {
			t.Errorf("ValidMode(%q) = false, want true", mode)
		}
	}

	invalid := []string{"", "friendship", "DATING", "wedding "}
	for _, mode := range invalid {
		if ValidMode(mode) {
			t.Errorf("ValidMode(%q) = true, want false", mode)
		}
	}
}

func TestUserDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "first name",
			user: User{FirstName: "Minji", LastName: "Kim"},
			want: "Minji",
		},
		{
			name: "no name falls back to email",
			user: User{Email: "someone@example.com"},
			want: "someone@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
