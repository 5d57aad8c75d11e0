package service

import (
	"context"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// AuthService covers account registration, credential verification, and the
// bearer-token lifecycle.
type AuthService interface {
	SignUp(ctx context.Context, credentials models.Credentials) (models.User, error)
	SignIn(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService reads and edits the authenticated user's profile.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// BookmarkService is the business layer over the caller's bookmark
// collection. Every operation is scoped to the authenticated user's id.
type BookmarkService interface {
	ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	CreateBookmark(ctx context.Context, userID int64, create models.BookmarkCreate) (models.Bookmark, error)
	GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	UpdateBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}
