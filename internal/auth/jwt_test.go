package auth

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	token, err := GenerateToken("user-1", "admin@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" || email != "admin@example.com" || role != RoleAdmin {
		t.Fatalf("claims round-trip failed: %s %s %s", userID, email, role)
	}
}

func TestGenerateToken_EmptyUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	if _, err := GenerateToken("", "admin@example.com", RoleAdmin); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one-secret-one-secret-one")
	token, err := GenerateToken("user-1", "admin@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two-secret-two-secret-two")
	if _, _, _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}
