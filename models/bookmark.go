package models

import "time"

// Bookmark represents a saved link owned by exactly one user.
// Ownership is enforced at the persistence layer: every query that reads or
// mutates a bookmark filters by UserID, so one user can never observe or
// touch another user's records.
type Bookmark struct {
	// ID is the unique identifier of the bookmark, assigned by the
	// persistence layer on creation.
	ID int64 `json:"id"`

	// UserID references the owning user. It is set from the authenticated
	// caller's identity on creation and never changes afterwards.
	UserID int64 `json:"userId"`

	// Title is the required display title of the bookmark.
	Title string `json:"title"`

	// Link is the required URL the bookmark points to.
	Link string `json:"link"`

	// Description is an optional free-form note.
	Description string `json:"description"`

	// CreatedAt is the timestamp when the bookmark was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}
