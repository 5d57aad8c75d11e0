// Package utils holds small helpers shared across layers: typed context
// keys, password hashing, JWT generation and validation, and JSON response
// writing.
package utils

import (
	"context"
)

// contextKey is a private key type so values stored by this package can
// never collide with string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key under which the auth middleware stores the
// authenticated user's id (an int64). Read it back with
// [GetUserIDFromContext]:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // no authenticated user in this context
//	}
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user's id from the
// context. ok is false when the value is absent or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
