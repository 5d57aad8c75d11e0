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

// bookmarkRepository is the SQL-backed implementation of [BookmarkRepository].
// It executes all bookmark CRUD operations against the "bookmarks" table
// using the embedded [*DB] connection.
//
// Ownership isolation lives in the queries themselves: every statement
// filters by the owning user id, so a bookmark id belonging to another user
// behaves exactly like a nonexistent one.
type bookmarkRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBookmark persists a new bookmark owned by bookmark.UserID and returns
// the record with its server-assigned id and timestamps.
//
// Error handling:
//   - foreign-key violation (owner vanished) → [ErrUserNotReferenced].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (p *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookmarkQuery(p.db.Builder(), bookmark, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("error building insert query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Bookmark
	row := p.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.UserID, &created.Title, &created.Link, &created.Description, &created.CreatedAt, &created.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Int64("user_id", bookmark.UserID).Msg("owner does not exist")
			return models.Bookmark{}, ErrUserNotReferenced
		}

		log.Err(err).
			Str("func", "*bookmarkRepository.CreateBookmark").
			Int64("user_id", bookmark.UserID).
			Bool("retryable", p.db.errorClassificator.Classify(err) == Retryable).
			Msg("error inserting bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetAllBookmarks retrieves every bookmark owned by the given user in
// creation order. Returns an empty slice when the user has no bookmarks.
func (p *bookmarkRepository) GetAllBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookmarksQuery(p.db.Builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetAllBookmarks").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.GetAllBookmarks").
			Int64("user_id", userID).
			Bool("retryable", p.db.errorClassificator.Classify(err) == Retryable).
			Msg("error querying bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Bookmark, 0)

	for rows.Next() {
		var item models.Bookmark

		scanErr := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Link, &item.Description, &item.CreatedAt, &item.UpdatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*bookmarkRepository.GetAllBookmarks").
				Int64("user_id", userID).
				Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*bookmarkRepository.GetAllBookmarks").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetBookmarkByID retrieves a single bookmark by id within the given user's
// ownership scope.
//
// Error handling:
//   - empty result set (absent or owned by someone else) → [ErrBookmarkNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (p *bookmarkRepository) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookmarkByIDQuery(p.db.Builder(), userID, bookmarkID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetBookmarkByID").Msg("error building select query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Bookmark
	row := p.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.UserID, &found.Title, &found.Link, &found.Description, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}

		log.Err(err).
			Str("func", "*bookmarkRepository.GetBookmarkByID").
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Bool("retryable", p.db.errorClassificator.Classify(err) == Retryable).
			Msg("error querying bookmark by id")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateBookmark applies the field mask in update to the bookmark's row in a
// single UPDATE statement and returns the record as stored afterwards.
//
// Error handling:
//   - empty result set (absent or owned by someone else) → [ErrBookmarkNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (p *bookmarkRepository) UpdateBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookmarkQuery(p.db.Builder(), userID, bookmarkID, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.UpdateBookmark").Msg("error building update query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Bookmark
	row := p.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.UserID, &updated.Title, &updated.Link, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}

		log.Err(err).
			Str("func", "*bookmarkRepository.UpdateBookmark").
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Bool("retryable", p.db.errorClassificator.Classify(err) == Retryable).
			Msg("error updating bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteBookmark removes the bookmark with the given id from the user's
// ownership scope. The removal is terminal: there is no soft-delete flag and
// no restore path.
//
// Error handling:
//   - zero rows affected (absent or owned by someone else) → [ErrBookmarkNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (p *bookmarkRepository) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookmarkQuery(p.db.Builder(), userID, bookmarkID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.DeleteBookmark").
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Bool("retryable", p.db.errorClassificator.Classify(err) == Retryable).
			Msg("error deleting bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
