package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mock"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockUsers, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-bookmark-keeper",
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)

	return svc, mockUsers
}

func TestSignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	credentials := models.Credentials{Email: "femi@example.com", Password: "123"}

	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			// the repository must never see the raw password
			assert.NotEqual(t, credentials.Password, user.PasswordHash)
			assert.True(t, utils.CheckPassword(user.PasswordHash, credentials.Password))

			user.UserID = 1
			return user, nil
		})

	registered, err := svc.SignUp(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, credentials.Email, registered.Email)
}

func TestSignUp_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{name: "empty email", credentials: models.Credentials{Password: "123"}},
		{name: "empty password", credentials: models.Credentials{Email: "femi@example.com"}},
		{name: "both empty", credentials: models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.credentials)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.SignUp(ctx, models.Credentials{Email: "femi@example.com", Password: "123"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestSignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("123")
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "femi@example.com").
		Return(models.User{UserID: 1, Email: "femi@example.com", PasswordHash: hash}, nil)

	found, err := svc.SignIn(ctx, models.Credentials{Email: "femi@example.com", Password: "123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
}

func TestSignIn_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("123")
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "femi@example.com").
		Return(models.User{UserID: 1, Email: "femi@example.com", PasswordHash: hash}, nil)

	_, err = svc.SignIn(ctx, models.Credentials{Email: "femi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.SignIn(ctx, models.Credentials{Email: "nobody@example.com", Password: "123"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCreateToken_ParseToken_Roundtrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_ForeignIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken("someone-else", 42, time.Hour, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken("go-bookmark-keeper", 42, -time.Hour, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestSignIn_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection lost")
	mockUsers.EXPECT().
		FindUserByEmail(ctx, "femi@example.com").
		Return(models.User{}, dbErr)

	_, err := svc.SignIn(ctx, models.Credentials{Email: "femi@example.com", Password: "123"})
	assert.ErrorIs(t, err, dbErr)
}
