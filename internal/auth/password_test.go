package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", 10)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("expected mismatched password to fail")
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("some-password", 99)
	if err != nil {
		t.Fatalf("HashPassword with out-of-range cost: %v", err)
	}
	if !CheckPassword(hash, "some-password") {
		t.Error("hash produced with fallback cost should still verify")
	}
}
