package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/soukly/api/internal/constants"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/pkg/slug"
)

type UserService struct {
	users *repository.UserRepository
	jwt   *JWTService
}

func NewUserService(users *repository.UserRepository, jwt *JWTService) *UserService {
	return &UserService{users: users, jwt: jwt}
}

// Create registers a user on behalf of an admin.
func (s *UserService) Create(ctx context.Context, user *model.User, password string) error {
	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return apperrors.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	user.Slug = slug.Make(user.Name)
	if user.Role == "" {
		user.Role = constants.RoleUser
	}
	user.Active = true

	return s.users.Create(ctx, user)
}

// Update applies profile changes; the password never travels this path.
func (s *UserService) Update(ctx context.Context, id uint, changes *model.User) (*model.User, error) {
	changes.Password = ""
	if changes.Name != "" {
		changes.Slug = slug.Make(changes.Name)
	}
	return s.users.Update(ctx, id, changes)
}

// ChangePassword sets a new password for any user (admin operation).
func (s *UserService) ChangePassword(ctx context.Context, id uint, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, id, string(hashed))
}

// ChangeOwnPassword verifies the current password before setting the new
// one, then issues a fresh token since the old ones die with the change.
func (s *UserService) ChangeOwnPassword(ctx context.Context, id uint, currentPassword, newPassword string) (string, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return "", apperrors.ErrIncorrectPassword
	}

	if err := s.ChangePassword(ctx, id, newPassword); err != nil {
		return "", err
	}
	return s.jwt.GenerateToken(id)
}

// Deactivate soft-disables the account; the user can activate it again.
func (s *UserService) Deactivate(ctx context.Context, id uint) error {
	return s.users.SetActive(ctx, id, false)
}

// Activate re-enables a deactivated account.
func (s *UserService) Activate(ctx context.Context, id uint) (*model.User, error) {
	if err := s.users.SetActive(ctx, id, true); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}
