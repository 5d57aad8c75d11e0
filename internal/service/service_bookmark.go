package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// bookmarkService is the concrete implementation of BookmarkService. The user
// id on every call comes from the verified token; the repository scopes every
// query by it, so one user's operations can never observe another user's
// bookmarks.
type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	logger             *logger.Logger
}

// NewBookmarkService constructs a BookmarkService backed by the given
// repository.
func NewBookmarkService(bookmarkRepository store.BookmarkRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		logger:             logger,
	}
}

// ListBookmarks returns the user's bookmarks in creation order. A user with
// no bookmarks gets an empty slice, never an error.
func (b *bookmarkService) ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	bookmarks, err := b.bookmarkRepository.GetAllBookmarks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("bookmark listing failed")
		return nil, fmt.Errorf("bookmark listing failed: %w", err)
	}

	return bookmarks, nil
}

// CreateBookmark validates the required fields and persists a new bookmark
// owned by userID.
//
// Returns:
//   - ErrInvalidDataProvided if Title or Link is empty (checked before any
//     store access).
//   - A wrapped storage error if persistence fails.
func (b *bookmarkService) CreateBookmark(ctx context.Context, userID int64, create models.BookmarkCreate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if create.Title == "" || create.Link == "" {
		log.Error().Int64("user_id", userID).Msg("invalid bookmark data provided")
		return models.Bookmark{}, ErrInvalidDataProvided
	}

	created, err := b.bookmarkRepository.CreateBookmark(ctx, models.Bookmark{
		UserID:      userID,
		Title:       create.Title,
		Link:        create.Link,
		Description: create.Description,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("bookmark creation failed")
		return models.Bookmark{}, fmt.Errorf("bookmark creation failed: %w", err)
	}

	return created, nil
}

// GetBookmark returns a single bookmark from the user's collection.
//
// Returns store.ErrBookmarkNotFound (wrapped) when the id is absent from the
// user's ownership scope: either it does not exist at all or it belongs to
// someone else.
func (b *bookmarkService) GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	bookmark, err := b.bookmarkRepository.GetBookmarkByID(ctx, userID, bookmarkID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("bookmark_id", bookmarkID).Msg("bookmark lookup failed")
		return models.Bookmark{}, fmt.Errorf("bookmark lookup failed: %w", err)
	}

	return bookmark, nil
}

// UpdateBookmark applies the field mask in update to the bookmark and returns
// the stored result. An empty mask is a no-op read. The id and owner of a
// bookmark never change through this path.
//
// Returns:
//   - ErrInvalidDataProvided if the mask sets title or link to an empty string.
//   - store.ErrBookmarkNotFound (wrapped) under the same ownership rule as
//     GetBookmark.
func (b *bookmarkService) UpdateBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if (update.Title != nil && *update.Title == "") || (update.Link != nil && *update.Link == "") {
		log.Error().Int64("user_id", userID).Int64("bookmark_id", bookmarkID).Msg("invalid bookmark update provided")
		return models.Bookmark{}, ErrInvalidDataProvided
	}

	if update.IsEmpty() {
		return b.GetBookmark(ctx, userID, bookmarkID)
	}

	updated, err := b.bookmarkRepository.UpdateBookmark(ctx, userID, bookmarkID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("bookmark_id", bookmarkID).Msg("bookmark update failed")
		return models.Bookmark{}, fmt.Errorf("bookmark update failed: %w", err)
	}

	return updated, nil
}

// DeleteBookmark removes the bookmark from the user's collection. Deletion is
// terminal; there is no restore operation.
//
// Returns store.ErrBookmarkNotFound (wrapped) under the same ownership rule
// as GetBookmark.
func (b *bookmarkService) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	if err := b.bookmarkRepository.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("bookmark_id", bookmarkID).Msg("bookmark deletion failed")
		return fmt.Errorf("bookmark deletion failed: %w", err)
	}

	return nil
}
