package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestEnsureAdmin_HashesPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	if err := service.EnsureAdmin("Admin", "admin@example.com", password); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["admin@example.com"]
	if user == nil {
		t.Fatal("admin user not found")
	}
	if user.Password == password {
		t.Fatal("password was stored in plain text")
	}
	if user.Role != RoleAdmin {
		t.Fatalf("expected role %s, got %s", RoleAdmin, user.Role)
	}
}

func TestEnsureAdmin_SecondBootIsNoOp(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if err := service.EnsureAdmin("Admin", "admin@example.com", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstHash := repo.users["admin@example.com"].Password

	if err := service.EnsureAdmin("Admin", "admin@example.com", "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.users["admin@example.com"].Password != firstHash {
		t.Fatal("existing admin password must not be rotated")
	}
}

func TestEnsureAdmin_MissingCredentials(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if err := service.EnsureAdmin("Admin", "", ""); err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestLogin_Success(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password@123"), bcrypt.DefaultCost)
	repo.Save(&User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     RoleAdmin,
	})

	user, err := service.Login("admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "admin@example.com" {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password@123"), bcrypt.DefaultCost)
	repo.Save(&User{Email: "admin@example.com", Password: string(hashed), Role: RoleAdmin})

	if _, err := service.Login("admin@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Login("ghost@example.com", "whatever"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
