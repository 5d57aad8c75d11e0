package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// userService is the concrete implementation of UserService. The user id it
// operates on always comes from the verified token, never from the request
// body, so a caller can only ever read or edit their own profile.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the profile of the user with the given id.
//
// Returns store.ErrNoUserWasFound (wrapped) if the id no longer resolves to
// an account.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies the field mask in update to the user's profile and
// returns the stored result. An empty mask is a no-op read: the current
// profile is returned unchanged.
//
// Returns:
//   - ErrInvalidDataProvided if the mask sets email to an empty string.
//   - store.ErrEmailAlreadyExists (wrapped) if the new email is taken.
//   - store.ErrNoUserWasFound (wrapped) if the id no longer resolves.
func (u *userService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Email != nil && *update.Email == "" {
		log.Error().Int64("user_id", userID).Msg("empty email in profile update")
		return models.User{}, ErrInvalidDataProvided
	}

	if update.IsEmpty() {
		return u.GetUser(ctx, userID)
	}

	updated, err := u.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}
