package service

import (
	"errors"
	"path/filepath"
	"testing"

	"webeat/internal/database"
	"webeat/internal/models"
	"webeat/internal/repository"
)

// newTestService spins up a sqlite-backed service stack in a temp directory
func newTestService(t *testing.T) (*CoupleService, *repository.UserRepository) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepository(db)
	coupleRepo := repository.NewCoupleRepository(db)
	inviteRepo := repository.NewInviteRepository(db)

	return NewCoupleService(inviteRepo, coupleRepo, userRepo), userRepo
}

func createTestUser(t *testing.T, userRepo *repository.UserRepository, email, firstName string) *models.User {
	t.Helper()
	user, err := userRepo.CreateUser(email, "hashedpass", firstName, "Kim")
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

func TestResolveScopeUnpaired(t *testing.T) {
	svc, userRepo := newTestService(t)
	user := createTestUser(t, userRepo, "solo@example.com", "Solo")

	scope := svc.ResolveScope(user.ID)
	if len(scope) != 1 || scope[0] != user.ID {
		t.Errorf("Expected scope [%d], got %v", user.ID, scope)
	}
}

func TestCreateInviteIdempotent(t *testing.T) {
	svc, userRepo := newTestService(t)
	user := createTestUser(t, userRepo, "inviter@example.com", "Minji")

	first, err := svc.CreateInvite(user.ID, models.ModeDating, "민지")
	if err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}
	if len(first.InviteCode) != 12 {
		t.Errorf("Expected 12-character invite code, got %q", first.InviteCode)
	}
	if first.Status != models.InviteStatusPending {
		t.Errorf("Expected pending status, got %q", first.Status)
	}

	second, err := svc.CreateInvite(user.ID, models.ModeDating, "different name")
	if err != nil {
		t.Fatalf("Failed on repeat create: %v", err)
	}
	if second.ID != first.ID || second.InviteCode != first.InviteCode {
		t.Errorf("Expected the existing pending invite back, got id=%d code=%q (want id=%d code=%q)",
			second.ID, second.InviteCode, first.ID, first.InviteCode)
	}
	if second.InviterName == nil || *second.InviterName != "민지" {
		t.Errorf("Expected stored inviter name unchanged, got %v", second.InviterName)
	}
}

func TestCreateInviteDistinctPerMode(t *testing.T) {
	svc, userRepo := newTestService(t)
	user := createTestUser(t, userRepo, "inviter@example.com", "Minji")

	dating, err := svc.CreateInvite(user.ID, models.ModeDating, "")
	if err != nil {
		t.Fatalf("Failed to create dating invite: %v", err)
	}
	wedding, err := svc.CreateInvite(user.ID, models.ModeWedding, "")
	if err != nil {
		t.Fatalf("Failed to create wedding invite: %v", err)
	}

	if dating.ID == wedding.ID {
		t.Error("Expected distinct invites per mode, got the same row")
	}
	if dating.InviteCode == wedding.InviteCode {
		t.Error("Expected distinct codes per mode")
	}
}

func TestCreateInviteInvalidMode(t *testing.T) {
	svc, userRepo := newTestService(t)
	user := createTestUser(t, userRepo, "inviter@example.com", "Minji")

	if _, err := svc.CreateInvite(user.ID, "friendship", ""); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if _, err := svc.CreateInvite(user.ID, "", ""); err == nil {
		t.Error("Expected error for empty mode")
	}
}

func TestLookupInvite(t *testing.T) {
	svc, userRepo := newTestService(t)
	user := createTestUser(t, userRepo, "inviter@example.com", "Minji")

	invite, err := svc.CreateInvite(user.ID, models.ModeWedding, "민지")
	if err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}

	// Lookup is read-only: repeated calls return the same pending view
	for i := 0; i < 3; i++ {
		lookup, err := svc.LookupInvite(invite.InviteCode)
		if err != nil {
			t.Fatalf("Lookup %d failed: %v", i, err)
		}
		if lookup.Status != models.InviteStatusPending {
			t.Errorf("Lookup %d: expected pending, got %q", i, lookup.Status)
		}
		if lookup.Mode != models.ModeWedding {
			t.Errorf("Lookup %d: expected wedding mode, got %q", i, lookup.Mode)
		}
		if lookup.InviterName != "민지" {
			t.Errorf("Lookup %d: expected inviter name 민지, got %q", i, lookup.InviterName)
		}
	}
}

func TestLookupInviteErrors(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.LookupInvite(""); !errors.Is(err, ErrCodeRequired) {
		t.Errorf("Expected ErrCodeRequired for empty code, got %v", err)
	}
	if _, err := svc.LookupInvite("ffffffffffff"); !errors.Is(err, ErrInviteNotFound) {
		t.Errorf("Expected ErrInviteNotFound for unknown code, got %v", err)
	}
}

func TestAcceptInvitePairsBothUsers(t *testing.T) {
	svc, userRepo := newTestService(t)
	inviter := createTestUser(t, userRepo, "a@example.com", "Minji")
	accepter := createTestUser(t, userRepo, "b@example.com", "Jun")

	invite, err := svc.CreateInvite(inviter.ID, models.ModeDating, "민지")
	if err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}

	result, err := svc.AcceptInvite(accepter.ID, invite.InviteCode)
	if err != nil {
		t.Fatalf("Failed to accept invite: %v", err)
	}
	if result.InviterID != inviter.ID {
		t.Errorf("Expected inviter id %d, got %d", inviter.ID, result.InviterID)
	}
	if result.Mode != models.ModeDating {
		t.Errorf("Expected dating mode, got %q", result.Mode)
	}
	if result.InviterName != "민지" {
		t.Errorf("Expected inviter name 민지, got %q", result.InviterName)
	}

	// Scope becomes symmetric: both partners resolve the same pair
	scopeA := svc.ResolveScope(inviter.ID)
	scopeB := svc.ResolveScope(accepter.ID)
	if len(scopeA) != 2 || len(scopeB) != 2 {
		t.Fatalf("Expected two-user scopes, got %v and %v", scopeA, scopeB)
	}
	if scopeA[0] != scopeB[0] || scopeA[1] != scopeB[1] {
		t.Errorf("Expected identical scope sets, got %v and %v", scopeA, scopeB)
	}

	partner, ok := svc.ResolvePartner(inviter.ID)
	if !ok || partner != accepter.ID {
		t.Errorf("Expected partner %d for inviter, got %d (ok=%v)", accepter.ID, partner, ok)
	}
	partner, ok = svc.ResolvePartner(accepter.ID)
	if !ok || partner != inviter.ID {
		t.Errorf("Expected partner %d for accepter, got %d (ok=%v)", inviter.ID, partner, ok)
	}
}

func TestAcceptInviteSelf(t *testing.T) {
	svc, userRepo := newTestService(t)
	inviter := createTestUser(t, userRepo, "a@example.com", "Minji")

	invite, err := svc.CreateInvite(inviter.ID, models.ModeDating, "")
	if err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}

	if _, err := svc.AcceptInvite(inviter.ID, invite.InviteCode); !errors.Is(err, ErrSelfAccept) {
		t.Errorf("Expected ErrSelfAccept, got %v", err)
	}

	// Invite stays pending after a rejected self-accept
	lookup, err := svc.LookupInvite(invite.InviteCode)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if lookup.Status != models.InviteStatusPending {
		t.Errorf("Expected invite still pending, got %q", lookup.Status)
	}
}

func TestAcceptInviteTwice(t *testing.T) {
	svc, userRepo := newTestService(t)
	inviter := createTestUser(t, userRepo, "a@example.com", "Minji")
	accepter := createTestUser(t, userRepo, "b@example.com", "Jun")
	third := createTestUser(t, userRepo, "c@example.com", "Hana")

	invite, err := svc.CreateInvite(inviter.ID, models.ModeDating, "")
	if err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}

	if _, err := svc.AcceptInvite(accepter.ID, invite.InviteCode); err != nil {
		t.Fatalf("First accept failed: %v", err)
	}

	if _, err := svc.AcceptInvite(third.ID, invite.InviteCode); !errors.Is(err, ErrInviteAlreadyAccepted) {
		t.Errorf("Expected ErrInviteAlreadyAccepted for second accepter, got %v", err)
	}

	// An already-redeemed code surfaces the conflict even to the inviter,
	// not the self-accept error
	if _, err := svc.AcceptInvite(inviter.ID, invite.InviteCode); !errors.Is(err, ErrInviteAlreadyAccepted) {
		t.Errorf("Expected ErrInviteAlreadyAccepted for inviter retry, got %v", err)
	}

	// Exactly one couple exists
	coupleA, err := svc.GetCouple(inviter.ID)
	if err != nil || coupleA == nil {
		t.Fatalf("Expected couple for inviter, got %v (err=%v)", coupleA, err)
	}
	coupleC, err := svc.GetCouple(third.ID)
	if err != nil {
		t.Fatalf("GetCouple failed: %v", err)
	}
	if coupleC != nil {
		t.Errorf("Expected no couple for losing accepter, got %+v", coupleC)
	}
}

func TestAcceptInviteErrors(t *testing.T) {
	svc, userRepo := newTestService(t)
	user := createTestUser(t, userRepo, "a@example.com", "Minji")

	if _, err := svc.AcceptInvite(user.ID, ""); !errors.Is(err, ErrCodeRequired) {
		t.Errorf("Expected ErrCodeRequired, got %v", err)
	}
	if _, err := svc.AcceptInvite(user.ID, "000000000000"); !errors.Is(err, ErrInviteNotFound) {
		t.Errorf("Expected ErrInviteNotFound, got %v", err)
	}
}

func TestInviterNameFallback(t *testing.T) {
	svc, userRepo := newTestService(t)

	t.Run("stored name wins", func(t *testing.T) {
		inviter := createTestUser(t, userRepo, "named@example.com", "Minji")
		invite, err := svc.CreateInvite(inviter.ID, models.ModeDating, "우리 민지")
		if err != nil {
			t.Fatalf("Failed to create invite: %v", err)
		}
		lookup, err := svc.LookupInvite(invite.InviteCode)
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if lookup.InviterName != "우리 민지" {
			t.Errorf("Expected stored name, got %q", lookup.InviterName)
		}
	})

	t.Run("falls back to first name", func(t *testing.T) {
		inviter := createTestUser(t, userRepo, "firstname@example.com", "Jun")
		invite, err := svc.CreateInvite(inviter.ID, models.ModeWedding, "")
		if err != nil {
			t.Fatalf("Failed to create invite: %v", err)
		}
		lookup, err := svc.LookupInvite(invite.InviteCode)
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if lookup.InviterName != "Jun" {
			t.Errorf("Expected first name fallback, got %q", lookup.InviterName)
		}
	})

	t.Run("falls back to default", func(t *testing.T) {
		inviter := createTestUser(t, userRepo, "anon@example.com", "")
		invite, err := svc.CreateInvite(inviter.ID, models.ModeFamily, "   ")
		if err != nil {
			t.Fatalf("Failed to create invite: %v", err)
		}
		lookup, err := svc.LookupInvite(invite.InviteCode)
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if lookup.InviterName != models.DefaultInviterName {
			t.Errorf("Expected %q, got %q", models.DefaultInviterName, lookup.InviterName)
		}
	})
}

func TestGetUserInvites(t *testing.T) {
	svc, userRepo := newTestService(t)
	user := createTestUser(t, userRepo, "a@example.com", "Minji")
	other := createTestUser(t, userRepo, "b@example.com", "Jun")

	if _, err := svc.CreateInvite(user.ID, models.ModeDating, ""); err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}
	if _, err := svc.CreateInvite(user.ID, models.ModeWedding, ""); err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}
	if _, err := svc.CreateInvite(other.ID, models.ModeDating, ""); err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}

	invites, err := svc.GetUserInvites(user.ID)
	if err != nil {
		t.Fatalf("Failed to get invites: %v", err)
	}
	if len(invites) != 2 {
		t.Errorf("Expected 2 invites, got %d", len(invites))
	}
	for _, invite := range invites {
		if invite.UserID != user.ID {
			t.Errorf("Got invite belonging to user %d, expected %d", invite.UserID, user.ID)
		}
	}
}

// TestPairingScenario walks the full flow: A invites, B looks up and accepts,
// and afterwards both share visibility.
func TestPairingScenario(t *testing.T) {
	svc, userRepo := newTestService(t)
	userA := createTestUser(t, userRepo, "a@example.com", "Minji")
	userB := createTestUser(t, userRepo, "b@example.com", "Jun")

	invite, err := svc.CreateInvite(userA.ID, models.ModeDating, "민지")
	if err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}

	lookup, err := svc.LookupInvite(invite.InviteCode)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if lookup.Status != models.InviteStatusPending {
		t.Fatalf("Expected pending invite, got %q", lookup.Status)
	}

	if _, err := svc.AcceptInvite(userB.ID, invite.InviteCode); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	lookup, err = svc.LookupInvite(invite.InviteCode)
	if err != nil {
		t.Fatalf("Lookup after accept failed: %v", err)
	}
	if lookup.Status != models.InviteStatusAccepted {
		t.Errorf("Expected accepted status, got %q", lookup.Status)
	}

	couple, err := svc.GetCouple(userA.ID)
	if err != nil || couple == nil {
		t.Fatalf("Expected couple for user A, got %v (err=%v)", couple, err)
	}
	if couple.User1ID != userA.ID || couple.User2ID != userB.ID {
		t.Errorf("Expected couple (%d, %d), got (%d, %d)",
			userA.ID, userB.ID, couple.User1ID, couple.User2ID)
	}
}
