package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skti-dev/bncc-backend/internal/config"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/store"
	"github.com/skti-dev/bncc-backend/internal/utils"
	"github.com/skti-dev/bncc-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the user repository (bcrypt) and handles
// the session token lifecycle with HMAC-SHA256.
type authService struct {
	// userRepository is the credential store adapter used to look up
	// accounts by email and by id.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an account by email and password and issues a session
// token for it.
//
// Returns the normalized user (the password hash never leaves the service
// boundary) and the signed token, or:
//   - ErrValidation if email or senha is empty;
//   - ErrUserNotFound if no account matches the email;
//   - ErrNoStoredPassword if the account has no hash on record;
//   - ErrWrongPassword if the bcrypt comparison fails;
//   - a wrapped ErrService for storage or signing failures.
func (a *authService) Login(ctx context.Context, email, senha string) (models.UserResponse, string, error) {
	log := logger.FromContext(ctx)

	if email == "" || senha == "" {
		return models.UserResponse{}, "", fmt.Errorf("%w: email e senha são obrigatórios", ErrValidation)
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			log.Warn().Str("email", email).Msg("login attempt for unknown user")
			return models.UserResponse{}, "", ErrUserNotFound
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.UserResponse{}, "", fmt.Errorf("%w: user search by email failed: %w", ErrService, err)
	}

	hash := user.StoredHash()
	if hash == "" {
		log.Warn().Str("email", email).Msg("account has no stored password hash")
		return models.UserResponse{}, "", ErrNoStoredPassword
	}

	if !utils.CheckPassword(senha, hash) {
		log.Warn().Str("email", email).Msg("wrong password")
		return models.UserResponse{}, "", ErrWrongPassword
	}

	normalized := user.Normalize()
	token, err := utils.IssueToken(normalized.ID, normalized.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("session token creation failed")
		return models.UserResponse{}, "", fmt.Errorf("%w: token creation failed: %w", ErrService, err)
	}

	return normalized, token, nil
}

// Authenticate verifies a raw session token and resolves its subject claim
// to a stored account.
//
// The returned sentinels let the authentication pipeline map each failure to
// its own audit outcome:
//   - utils.ErrTokenExpired / utils.ErrTokenMalformed from verification;
//   - ErrTokenSubjectMissing when the subject claim is empty or not a valid
//     document id;
//   - ErrUserNotFound when no account matches the subject;
//   - a wrapped ErrService for storage failures.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.VerifyToken(tokenString, a.tokenSignKey)
	if err != nil {
		return models.UserResponse{}, err
	}

	if claims.Subject == "" {
		return models.UserResponse{}, ErrTokenSubjectMissing
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return models.UserResponse{}, ErrTokenSubjectMissing
	}

	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return models.UserResponse{}, ErrUserNotFound
		}
		log.Err(err).Str("sub", claims.Subject).Msg("user lookup by token subject failed")
		return models.UserResponse{}, fmt.Errorf("%w: user lookup failed: %w", ErrService, err)
	}

	return user.Normalize(), nil
}
