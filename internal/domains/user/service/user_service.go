package service

import (
	"context"
	"errors"
	"fmt"

	"travelblog-backend/internal/domains/user"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo user.Repository
}

// NewUserService wires account logic over a store backend.
func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.repo.Create(ctx, &user.User{
		Username: username,
		Password: string(hash),
	})
	if errors.Is(err, user.ErrDuplicateUsername) {
		// Lost a race with another boot; the account exists, which is all
		// EnsureAdmin promises.
		return nil
	}
	return err
}
