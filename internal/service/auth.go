package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/soukly/api/internal/constants"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/pkg/logger"
	"github.com/soukly/api/pkg/mailer"
	"github.com/soukly/api/pkg/slug"
)

// Sender delivers transactional mail. Satisfied by pkg/mailer.
type Sender interface {
	Send(to, subject, body string, data any) error
}

type AuthService struct {
	users   *repository.UserRepository
	jwt     *JWTService
	mail    Sender
	appName string
}

func NewAuthService(users *repository.UserRepository, jwt *JWTService, mail Sender, appName string) *AuthService {
	return &AuthService{
		users:   users,
		jwt:     jwt,
		mail:    mail,
		appName: appName,
	}
}

// Signup registers a new account and returns it with a fresh token.
func (s *AuthService) Signup(ctx context.Context, name, email, phone, password string) (*model.User, string, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", apperrors.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Slug:     slug.Make(name),
		Email:    email,
		Phone:    phone,
		Password: string(hashed),
		Role:     constants.RoleUser,
		Active:   true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.GetLogger().Info("User signed up",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
	)
	return user, token, nil
}

// Login checks the credentials and returns the user with a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ForgotPassword generates a 6-digit reset code, stores its sha256 hash
// with a 10-minute expiry and emails the plain code to the user. If the
// email cannot be sent the stored reset state is rolled back before the
// error surfaces, so no orphaned code is left behind.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}
	expires := time.Now().UTC().Add(constants.ResetCodeExpiryMin * time.Minute)

	if err := s.users.SaveResetCode(ctx, user.ID, hashResetCode(code), expires); err != nil {
		return err
	}

	data := mailer.ResetCodeData{
		Name:    user.Name,
		AppName: s.appName,
		Code:    code,
	}
	if err := s.mail.Send(user.Email, mailer.ResetCodeSubject, mailer.ResetCodeBody, data); err != nil {
		if clearErr := s.users.ClearResetCode(ctx, user.ID); clearErr != nil {
			logger.GetLogger().Error("Failed to roll back reset code",
				zap.Uint("user_id", user.ID),
				zap.Error(clearErr),
			)
		}
		return apperrors.WrapError(apperrors.ErrEmailSendFailed, err)
	}

	logger.GetLogger().Info("Password reset code sent",
		zap.Uint("user_id", user.ID),
	)
	return nil
}

// VerifyResetCode checks the submitted code and marks the reset verified.
func (s *AuthService) VerifyResetCode(ctx context.Context, code string) error {
	user, err := s.users.FindByValidResetCode(ctx, hashResetCode(code))
	if err != nil {
		return err
	}
	return s.users.MarkResetVerified(ctx, user.ID)
}

// ResetPassword sets the new password for a verified reset and returns a
// fresh token so the user is logged in immediately.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !user.PasswordResetVerified {
		return "", apperrors.ErrResetCodeUnverified
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return "", err
	}

	return s.jwt.GenerateToken(user.ID)
}

// CurrentUser resolves a validated token's subject and rejects tokens
// issued before the last password change.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint, issuedAt time.Time) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if user.PasswordChangedAt != nil && user.PasswordChangedAt.After(issuedAt) {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}

// generateResetCode draws a random 6-digit code.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func hashResetCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
