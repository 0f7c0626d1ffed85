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
	"github.com/MKhiriev/go-todo/models"
)

type profileService struct {
	userRepository store.UserRepository
	hasher         *utils.PasswordHasher
	logger         *logger.Logger
}

// NewProfileService returns a ProfileService without request validation.
// Wrap it with NewProfileValidationService before exposing it to handlers.
func NewProfileService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		hasher:         utils.NewPasswordHasher(cfg.PasswordHashCost),
		logger:         logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, p.mapUserError(ctx, err, "user search by id failed")
	}

	return user, nil
}

// UpdateProfile applies the present fields of req to the caller's account.
// A new password is stored hashed. An email already used by another account
// gives ErrEmailAlreadyRegistered. An empty request returns the record
// unchanged.
func (p *profileService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{
		ID:        userID,
		Email:     req.Email,
		Name:      req.Name,
		UpdatedAt: time.Now().UTC(),
	}
	if update.IsEmpty() && req.Password == nil {
		return p.GetProfile(ctx, userID)
	}

	if req.Email != nil {
		owner, err := p.userRepository.FindUserByEmail(ctx, *req.Email)
		switch {
		case err == nil && owner.ID != userID:
			log.Debug().Str("user_id", userID).Msg("email belongs to another user")
			return models.User{}, ErrEmailAlreadyRegistered
		case err != nil && !errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("user search by email failed")
			return models.User{}, fmt.Errorf("user search by email failed: %w", err)
		}
	}

	if req.Password != nil {
		digest, err := p.hasher.Hash(*req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, err
		}
		update.Password = &digest
	}

	user, err := p.userRepository.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, p.mapUserError(ctx, err, "user update failed")
	}

	return user, nil
}

// DeleteProfile removes the caller's account together with its todos and
// returns the deleted record.
func (p *profileService) DeleteProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := p.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		return models.User{}, p.mapUserError(ctx, err, "user deletion failed")
	}

	return user, nil
}

func (p *profileService) mapUserError(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyRegistered
	default:
		logger.FromContext(ctx).Err(err).Msg(msg)
		return fmt.Errorf("%s: %w", msg, err)
	}
}
