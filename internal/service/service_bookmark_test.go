package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mock"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

func newTestBookmarkSvc(t *testing.T, ctrl *gomock.Controller) (*bookmarkService, *mock.MockBookmarkRepository) {
	t.Helper()

	mockBookmarks := mock.NewMockBookmarkRepository(ctrl)
	svc := NewBookmarkService(mockBookmarks, logger.Nop()).(*bookmarkService)

	return svc, mockBookmarks
}

func TestListBookmarks_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	mockBookmarks.EXPECT().
		GetAllBookmarks(ctx, int64(1)).
		Return([]models.Bookmark{}, nil)

	bookmarks, err := svc.ListBookmarks(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, bookmarks)
	assert.Empty(t, bookmarks)
}

func TestCreateBookmark_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	create := models.BookmarkCreate{
		Title: "First bookmark",
		Link:  "http://github.com/imef-femi",
	}

	mockBookmarks.EXPECT().
		CreateBookmark(ctx, models.Bookmark{
			UserID: 1,
			Title:  create.Title,
			Link:   create.Link,
		}).
		Return(models.Bookmark{ID: 1, UserID: 1, Title: create.Title, Link: create.Link}, nil)

	created, err := svc.CreateBookmark(ctx, 1, create)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, create.Title, created.Title)
}

func TestCreateBookmark_MissingRequiredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		create models.BookmarkCreate
	}{
		{name: "no title", create: models.BookmarkCreate{Link: "http://github.com/imef-femi"}},
		{name: "no link", create: models.BookmarkCreate{Title: "First bookmark"}},
		{name: "empty", create: models.BookmarkCreate{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBookmark(ctx, 1, tt.create)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestGetBookmark_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	mockBookmarks.EXPECT().
		GetBookmarkByID(ctx, int64(1), int64(404)).
		Return(models.Bookmark{}, store.ErrBookmarkNotFound)

	_, err := svc.GetBookmark(ctx, 1, 404)
	assert.ErrorIs(t, err, store.ErrBookmarkNotFound)
}

func TestUpdateBookmark_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	title := "Bookmark Something"
	description := "More bookmark desc"
	update := models.BookmarkUpdate{Title: &title, Description: &description}

	mockBookmarks.EXPECT().
		UpdateBookmark(ctx, int64(1), int64(7), update).
		Return(models.Bookmark{ID: 7, UserID: 1, Title: title, Description: description}, nil)

	updated, err := svc.UpdateBookmark(ctx, 1, 7, update)
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, description, updated.Description)
}

func TestUpdateBookmark_EmptyMaskReadsBookmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	mockBookmarks.EXPECT().
		GetBookmarkByID(ctx, int64(1), int64(7)).
		Return(models.Bookmark{ID: 7, UserID: 1, Title: "First bookmark"}, nil)

	bookmark, err := svc.UpdateBookmark(ctx, 1, 7, models.BookmarkUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "First bookmark", bookmark.Title)
}

func TestUpdateBookmark_BlankRequiredFieldRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	empty := ""

	_, err := svc.UpdateBookmark(ctx, 1, 7, models.BookmarkUpdate{Title: &empty})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UpdateBookmark(ctx, 1, 7, models.BookmarkUpdate{Link: &empty})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeleteBookmark_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	mockBookmarks.EXPECT().
		DeleteBookmark(ctx, int64(1), int64(7)).
		Return(nil)

	require.NoError(t, svc.DeleteBookmark(ctx, 1, 7))
}

func TestDeleteBookmark_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestBookmarkSvc(t, ctrl)
	ctx := context.Background()

	mockBookmarks.EXPECT().
		DeleteBookmark(ctx, int64(1), int64(404)).
		Return(store.ErrBookmarkNotFound)

	err := svc.DeleteBookmark(ctx, 1, 404)
	assert.ErrorIs(t, err, store.ErrBookmarkNotFound)
}
