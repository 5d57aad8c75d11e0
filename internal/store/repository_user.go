package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the newly created
// account.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.Builder(), user, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.UserID, &created.Email, &created.PasswordHash, &created.FirstName, &created.LastName, &created.CreatedAt, &created.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user record registered under the given email.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.Builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.UserID, &found.Email, &found.PasswordHash, &found.FirstName, &found.LastName, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "*userRepository.FindUserByEmail").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error querying user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// FindUserByID retrieves the user record with the given id.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.Builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.UserID, &found.Email, &found.PasswordHash, &found.FirstName, &found.LastName, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "*userRepository.FindUserByID").
			Int64("user_id", userID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error querying user by id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateUser applies the field mask in update to the user's row in a single
// UPDATE statement and returns the record as stored afterwards. Fields the
// mask does not select keep their current values.
//
// Error handling:
//   - empty result set (no such user) → [ErrNoUserWasFound].
//   - unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.Builder(), userID, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.UserID, &updated.Email, &updated.PasswordHash, &updated.FirstName, &updated.LastName, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrNoUserWasFound
		case isUniqueViolation(err):
			log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Int64("user_id", userID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}
