package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// LOGIN
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin seeds the dashboard account on first boot. Later boots
// are no-ops: an existing account keeps its password.
func (s *Service) EnsureAdmin(name, email, password string) error {
	if email == "" || password == "" {
		return errors.New("admin credentials not configured")
	}

	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return err
	}

	return s.repo.Save(&User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     RoleAdmin,
	})
}
