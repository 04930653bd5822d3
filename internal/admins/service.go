// Package admins holds the email/password accounts behind the editing panel.
package admins

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so the
// login response never reveals which accounts exist.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// Service encapsulates admin account logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Authenticate checks the email/password pair and returns the account on
// success. Any mismatch returns ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Admin, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		// burn a hash comparison anyway to keep timing uniform
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000000000000000000000000000000000"), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// SetPassword creates or updates an account with a freshly hashed password.
func (s *Service) SetPassword(ctx context.Context, email, password string) (*Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.UpsertByEmail(ctx, &Admin{Email: email, PasswordHash: string(hash)})
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	return s.repo.GetByEmail(ctx, email)
}
