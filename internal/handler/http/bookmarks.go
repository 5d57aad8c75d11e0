package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarks, err := h.services.BookmarkService.ListBookmarks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("bookmark listing failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, bookmarks, http.StatusOK)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var create models.BookmarkCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdBookmark, err := h.services.BookmarkService.CreateBookmark(ctx, userID, create)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("bookmark creation failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Int64("id", createdBookmark.ID).Int64("user_id", userID).Msg("bookmark created")

	utils.WriteJSON(w, createdBookmark, http.StatusCreated)
}

func (h *Handler) getBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric bookmark id in url")
		writeError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	bookmark, err := h.services.BookmarkService.GetBookmark(ctx, userID, bookmarkID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("bookmark_id", bookmarkID).Msg("bookmark lookup failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusOK)
}

func (h *Handler) editBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric bookmark id in url")
		writeError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var update models.BookmarkUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedBookmark, err := h.services.BookmarkService.UpdateBookmark(ctx, userID, bookmarkID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("bookmark_id", bookmarkID).Msg("bookmark update failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedBookmark, http.StatusOK)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric bookmark id in url")
		writeError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if err := h.services.BookmarkService.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("bookmark_id", bookmarkID).Msg("bookmark deletion failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bookmarkIDFromRequest parses the {id} url parameter. A non-numeric value
// names a resource that cannot exist, so callers should answer 404.
func bookmarkIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
