package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/soukly/api/internal/errors"
)

type JWTService struct {
	secretKey  string
	expiration time.Duration
}

func NewJWTService(secretKey string, expiration time.Duration) *JWTService {
	return &JWTService{
		secretKey:  secretKey,
		expiration: expiration,
	}
}

// GenerateToken creates a signed token carrying the user id.
func (s *JWTService) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses the token and returns the user id it carries.
func (s *JWTService) ValidateToken(tokenString string) (uint, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return 0, time.Time{}, apperrors.WrapError(apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, time.Time{}, apperrors.ErrInvalidToken
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, time.Time{}, apperrors.ErrInvalidToken
	}

	var issuedAt time.Time
	if rawIat, ok := claims["iat"].(float64); ok {
		issuedAt = time.Unix(int64(rawIat), 0)
	}

	return uint(rawID), issuedAt, nil
}
