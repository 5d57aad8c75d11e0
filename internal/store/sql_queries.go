package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// Column lists shared by the query builders and the row scanners.
// Order matters: scan destinations follow these lists exactly.
var (
	userColumns     = []string{"user_id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}
	bookmarkColumns = []string{"id", "user_id", "title", "link", "description", "created_at", "updated_at"}
)

const (
	returningUserColumns     = "RETURNING user_id, email, password_hash, first_name, last_name, created_at, updated_at"
	returningBookmarkColumns = "RETURNING id, user_id, title, link, description, created_at, updated_at"
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("email", "password_hash", "first_name", "last_name", "created_at", "updated_at").
		Values(user.Email, user.PasswordHash, user.FirstName, user.LastName, now, now).
		Suffix(returningUserColumns).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateUserQuery assembles a partial UPDATE from the field mask: only
// non-nil fields of update become SET clauses. updated_at is always touched.
func buildUpdateUserQuery(b sq.StatementBuilderType, userID int64, update models.UserUpdate, now time.Time) (string, []any, error) {
	q := b.Update(models.User{}.TableName()).
		Set("updated_at", now)

	if update.Email != nil {
		q = q.Set("email", *update.Email)
	}
	if update.FirstName != nil {
		q = q.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		q = q.Set("last_name", *update.LastName)
	}

	return q.Where(sq.Eq{"user_id": userID}).
		Suffix(returningUserColumns).
		ToSql()
}

func buildInsertBookmarkQuery(b sq.StatementBuilderType, bookmark models.Bookmark, now time.Time) (string, []any, error) {
	return b.Insert(bookmark.TableName()).
		Columns("user_id", "title", "link", "description", "created_at", "updated_at").
		Values(bookmark.UserID, bookmark.Title, bookmark.Link, bookmark.Description, now, now).
		Suffix(returningBookmarkColumns).
		ToSql()
}

// buildSelectBookmarksQuery lists the user's bookmarks in creation order.
// Ids are assigned monotonically by both backends, so ordering by id yields
// creation order without an extra sort column.
func buildSelectBookmarksQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(bookmarkColumns...).
		From(models.Bookmark{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
}

func buildSelectBookmarkByIDQuery(b sq.StatementBuilderType, userID, bookmarkID int64) (string, []any, error) {
	return b.Select(bookmarkColumns...).
		From(models.Bookmark{}.TableName()).
		Where(sq.Eq{"id": bookmarkID, "user_id": userID}).
		ToSql()
}

// buildUpdateBookmarkQuery assembles a partial UPDATE from the field mask.
// The WHERE clause carries both the bookmark id and the owning user id, so a
// foreign bookmark id matches zero rows and surfaces as "not found".
func buildUpdateBookmarkQuery(b sq.StatementBuilderType, userID, bookmarkID int64, update models.BookmarkUpdate, now time.Time) (string, []any, error) {
	q := b.Update(models.Bookmark{}.TableName()).
		Set("updated_at", now)

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Link != nil {
		q = q.Set("link", *update.Link)
	}
	if update.Description != nil {
		q = q.Set("description", *update.Description)
	}

	return q.Where(sq.Eq{"id": bookmarkID, "user_id": userID}).
		Suffix(returningBookmarkColumns).
		ToSql()
}

func buildDeleteBookmarkQuery(b sq.StatementBuilderType, userID, bookmarkID int64) (string, []any, error) {
	return b.Delete(models.Bookmark{}.TableName()).
		Where(sq.Eq{"id": bookmarkID, "user_id": userID}).
		ToSql()
}
