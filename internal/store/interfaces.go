package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// BookmarkRepository is the data-access contract for bookmarks. Every method
// takes the owning user's id and never reads or mutates records outside that
// ownership scope.
type BookmarkRepository interface {
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	GetAllBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	UpdateBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are backend-specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
