package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

// ErrTokenInvalid indicates a missing, malformed or expired bearer token.
var ErrTokenInvalid = errors.New("invalid or expired token")

// TokenService mints and validates opaque bearer tokens. Each token is stored
// as its own record-store key holding the user ID and expiry; validity is a
// store lookup, never a parse of the token string.
type TokenService struct {
	records store.Store
	ttl     time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

// NewTokenService builds a token issuer/validator with the given session TTL.
func NewTokenService(records store.Store, ttl time.Duration, logger zerolog.Logger) *TokenService {
	return &TokenService{
		records: records,
		ttl:     ttl,
		logger:  logger.With().Str("component", "token_service").Logger(),
		now:     time.Now,
	}
}

// Issue mints a token for userID and persists its session record.
func (s *TokenService) Issue(ctx context.Context, userID string) (string, error) {
	now := s.now()
	token := models.NewTokenID(userID, now)
	record := models.TokenRecord{
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl).UnixMilli(),
	}

	if err := store.SetJSON(ctx, s.records, token, record); err != nil {
		return "", err
	}

	return token, nil
}

// Validate resolves a token to its user's public profile. A token is valid
// strictly before its expiry instant; at expiry it is already invalid.
func (s *TokenService) Validate(ctx context.Context, token string) (models.PublicUser, error) {
	if token == "" {
		return models.PublicUser{}, ErrTokenInvalid
	}

	var record models.TokenRecord
	if err := store.GetJSON(ctx, s.records, token, &record); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PublicUser{}, ErrTokenInvalid
		}
		return models.PublicUser{}, err
	}

	if s.now().UnixMilli() >= record.ExpiresAt {
		return models.PublicUser{}, ErrTokenInvalid
	}

	var user models.User
	if err := store.GetJSON(ctx, s.records, record.UserID, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PublicUser{}, ErrTokenInvalid
		}
		return models.PublicUser{}, err
	}

	return user.Public(), nil
}
