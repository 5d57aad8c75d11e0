package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// getCurrentUser returns the profile of the user resolved from the bearer
// token. The id never comes from the URL or the body.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// editCurrentUser applies a partial profile update. Only the fields present
// in the request body change; omitted fields keep their stored values.
func (h *Handler) editCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}
