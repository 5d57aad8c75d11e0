package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the server-side view of an issued or parsed JWT.
//
// The embedded [jwt.Token] gives access to low-level signing and claim
// inspection, and the embedded [jwt.RegisteredClaims] exposes the standard
// RFC 7519 claim set (sub, exp, iat, nbf, iss, aud, jti).
//
// None of the fields are serialized to JSON: clients only ever see the
// compact string form, delivered as `access_token` in the sign-in body and
// mirrored in the Authorization response header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form of the token
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// UserID caches the "sub" claim parsed to int64 so downstream code does
	// not re-parse the subject on every access.
	UserID int64 `json:"-"`
}

// GetUserID reads the "sub" claim and parses it as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or not a number.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer] and returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
