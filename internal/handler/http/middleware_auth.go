package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// via [utils.ParseBearerToken], validates it through
// [service.AuthService.ParseToken], and on success stores the authenticated
// user's ID in the request context under [utils.UserIDCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not exactly "<scheme> <token>" with a non-empty token
//     ([utils.ErrInvalidAuthorizationHeader]).
//   - The token is expired, malformed, carries a foreign issuer, or fails
//     signature verification.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
