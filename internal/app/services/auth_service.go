package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/app/repositories"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-api/internal/pkg/auth"
	"github.com/cohorttools/cohort-api/internal/pkg/validation"
)

// AuthService handles signup and login. The password hasher and the token
// signer are injected capabilities so tests can run with deterministic fakes.
type AuthService struct {
	userRepo     repositories.IUserRepository
	hasher       auth.Hasher
	tokenService auth.TokenService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	hasher auth.Hasher,
	tokenService auth.TokenService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// validateSignup checks the structural signup rules before touching the store
func (s *AuthService) validateSignup(req *dto.SignupRequest) error {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.UserName) == "" || req.Password == "" {
		return apperrors.NewValidationError("Provide email, userName and password")
	}

	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Provide a valid email address")
	}

	if msg := validation.CheckPassword(req.Password); msg != "" {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, msg)
	}

	return nil
}

// Signup registers a new user credential. The userName is trimmed before
// persisting; duplicate email or userName is rejected.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if err := s.validateSignup(req); err != nil {
		return nil, err
	}

	userName := strings.TrimSpace(req.UserName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.userRepo.UserNameExists(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("error checking if userName exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUserNameAlreadyExists
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		UserName:     userName,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index may still fire under a concurrent signup race
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Str("userName", user.UserName).Msg("User registered")

	return &dto.SignupResponse{
		ID:       user.ID.Hex(),
		Email:    user.Email,
		UserName: user.UserName,
	}, nil
}

// Login verifies credentials and issues a signed session token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Provide email and password")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrIncorrectPassword
	}

	token, err := s.tokenService.GenerateToken(user.ID.Hex(), user.Email, user.UserName)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("User logged in")

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	}, nil
}
