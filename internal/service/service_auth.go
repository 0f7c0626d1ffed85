package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo/internal/config"
	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/internal/store"
	"github.com/MKhiriev/go-todo/internal/utils"
	"github.com/MKhiriev/go-todo/internal/validators"
	"github.com/MKhiriev/go-todo/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks and normalises register and login payloads.
	validator validators.Validator

	// hasher is the credential codec shared by registration and login.
	hasher *utils.PasswordHasher

	// ids assigns identifiers to new accounts.
	ids *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		hasher:         utils.NewPasswordHasher(cfg.PasswordHashCost),
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The steps run in a fixed order and stop at the first failure:
//  1. schema check of req (required fields, name trimmed, password length);
//  2. lookup by email, an existing account gives ErrEmailAlreadyRegistered;
//  3. email address format check;
//  4. password hashing and insert.
//
// A concurrent registration that loses on the unique index also gives
// ErrEmailAlreadyRegistered. Validation failures are returned as
// *validators.ValidationError.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, &req); err != nil {
		return models.User{}, fmt.Errorf("register request validation failed: %w", err)
	}
	email := deref(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("email", email).Msg("email is already registered")
		return models.User{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.validator.Validate(ctx, &req, validators.FieldEmailFormat); err != nil {
		return models.User{}, fmt.Errorf("register request validation failed: %w", err)
	}

	digest, err := a.hasher.Hash(deref(req.Password))
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        a.ids.Generate(),
		Email:     email,
		Name:      deref(req.Name),
		Password:  digest,
		CreatedAt: now,
		UpdatedAt: now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - *validators.ValidationError if req is malformed;
//   - ErrUserNotFound if no account uses the email;
//   - ErrWrongPassword if the password does not match the stored digest.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, &req); err != nil {
		return models.User{}, fmt.Errorf("login request validation failed: %w", err)
	}

	email := deref(req.Email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", email).Msg("login with unknown email")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Compare(deref(req.Password), foundUser.Password) {
		log.Debug().Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Failures are normalised so that callers do not need to inspect low-level
// JWT errors:
//   - an expired token gives ErrTokenIsExpired;
//   - a missing sign key gives ErrTokenCodecMisconfigured;
//   - anything else (bad signature, wrong issuer, malformed) gives
//     ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, utils.ErrEmptySignKey):
		logger.FromContext(ctx).Error().Msg("token sign key is not configured")
		return models.Token{}, ErrTokenCodecMisconfigured
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrTokenIsExpired
	default:
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
}
