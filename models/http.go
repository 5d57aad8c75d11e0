package models

// Credentials is the request body for both sign-up and sign-in.
type Credentials struct {
	// Email is the address the account is registered under. Required.
	Email string `json:"email"`

	// Password is the plaintext password supplied by the caller.
	// It never leaves the request scope: the service layer hashes it
	// before anything is persisted. Required.
	Password string `json:"password"`
}

// UserUpdate is the field mask for a partial profile edit.
// Only non-nil fields are applied; nil fields keep their stored values.
type UserUpdate struct {
	// Email replaces the sign-in address when non-nil.
	// Subject to the same uniqueness constraint as sign-up.
	Email *string `json:"email,omitempty"`

	// FirstName replaces the given name when non-nil.
	FirstName *string `json:"firstName,omitempty"`

	// LastName replaces the family name when non-nil.
	LastName *string `json:"lastName,omitempty"`
}

// BookmarkCreate is the request body for creating a bookmark.
type BookmarkCreate struct {
	// Title is the display title. Required.
	Title string `json:"title"`

	// Link is the URL the bookmark points to. Required.
	Link string `json:"link"`

	// Description is an optional free-form note.
	Description string `json:"description"`
}

// BookmarkUpdate is the field mask for a partial bookmark edit.
// Only non-nil fields are applied, atomically, in a single UPDATE.
type BookmarkUpdate struct {
	// Title replaces the display title when non-nil.
	Title *string `json:"title,omitempty"`

	// Link replaces the URL when non-nil.
	Link *string `json:"link,omitempty"`

	// Description replaces the note when non-nil.
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the mask selects no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil
}

// IsEmpty reports whether the mask selects no fields at all.
func (u BookmarkUpdate) IsEmpty() bool {
	return u.Title == nil && u.Link == nil && u.Description == nil
}
