package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

// UpdateProfile mutates the user's name and surname. Email, role and the
// assigned therapist are immutable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, surname string) error {
	if name == "" || surname == "" {
		return ErrValidation
	}
	err := s.Store.Users().UpdateProfile(ctx, userID, name, surname)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
