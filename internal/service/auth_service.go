package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

var (
	// ErrEmailTaken indicates the signup email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound indicates no account matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates the password did not match.
	ErrInvalidCredentials = errors.New("invalid password")
)

// AuthService handles account registration and sign-in.
type AuthService struct {
	records    store.Store
	tokens     *TokenService
	validator  *validator.Validate
	bcryptCost int
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAuthService builds the authentication service.
func NewAuthService(records store.Store, tokens *TokenService, validate *validator.Validate, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return &AuthService{
		records:    records,
		tokens:     tokens,
		validator:  validate,
		bcryptCost: bcryptCost,
		logger:     logger.With().Str("component", "auth_service").Logger(),
		now:        time.Now,
	}
}

// SignUp registers a new account. Email uniqueness is enforced by a linear
// scan over the user prefix; there is no secondary index.
func (s *AuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (models.PublicUser, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.PublicUser{}, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	existing, err := s.lookupByEmail(ctx, req.Email)
	if err != nil {
		return models.PublicUser{}, err
	}
	if existing != nil {
		return models.PublicUser{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return models.PublicUser{}, err
	}

	now := s.now()
	user := models.User{
		ID:           models.NewUserID(now),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		CreatedAt:    now,
	}

	if err := store.SetJSON(ctx, s.records, user.ID, user); err != nil {
		return models.PublicUser{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("account created")

	return user.Public(), nil
}

// SignIn verifies credentials and issues a bearer token.
func (s *AuthService) SignIn(ctx context.Context, req dto.SignInRequest) (dto.SignInResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.SignInResponse{}, err
	}

	user, err := s.lookupByEmail(ctx, req.Email)
	if err != nil {
		return dto.SignInResponse{}, err
	}
	if user == nil {
		return dto.SignInResponse{}, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return dto.SignInResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return dto.SignInResponse{}, err
	}

	return dto.SignInResponse{User: user.Public(), Token: token}, nil
}

// lookupByEmail scans all user records for an exact, case-sensitive email
// match. Returns nil when no account matches.
func (s *AuthService) lookupByEmail(ctx context.Context, email string) (*models.User, error) {
	values, err := s.records.GetByPrefix(ctx, models.UserPrefix)
	if err != nil {
		return nil, err
	}

	for _, user := range decodeUserRecords(values) {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}

	return nil, nil
}

// decodeUserRecords filters the raw values under the user prefix down to
// actual account records. Index side-lists share the prefix and are skipped,
// as is anything without an email.
func decodeUserRecords(values [][]byte) []models.User {
	users := make([]models.User, 0, len(values))
	for _, raw := range values {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			continue
		}
		if user.Email == "" {
			continue
		}
		users = append(users, user)
	}

	return users
}
