package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	password := "correcthorse"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == password {
		t.Error("Hash should not equal the plaintext password")
	}

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword should accept the correct password")
	}
	if CheckPassword("wrongpassword", hash) {
		t.Error("CheckPassword should reject a wrong password")
	}
	if CheckPassword(password, "not-a-bcrypt-hash") {
		t.Error("CheckPassword should reject a malformed hash")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("samepassword")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	second, err := HashPassword("samepassword")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if first == second {
		t.Error("Two hashes of the same password should differ")
	}
}

func TestGenerateSessionID(t *testing.T) {
	first := GenerateSessionID()
	second := GenerateSessionID()

	if first == "" || second == "" {
		t.Fatal("Session IDs should not be empty")
	}
	if first == second {
		t.Error("Session IDs should be unique")
	}
}
