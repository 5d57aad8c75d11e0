package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookmark-keeper/internal/service"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrBookmarkNotFound:   http.StatusNotFound,
	store.ErrUserNotReferenced:  http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends a JSON error body with the given status. The message is
// what API clients see; the underlying error is only logged.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
