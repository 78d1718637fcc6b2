package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndanilenko/authgate/internal/service"
	"github.com/ndanilenko/authgate/internal/utils"
	"github.com/ndanilenko/authgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Success(t *testing.T) {
	parsedToken := models.Token{SignedString: "raw-token", UserID: 1}
	resolvedUser := models.User{UserID: 1, Email: "john@example.com", Nickname: "john"}

	h := newTestHandler(&fakeAuthService{
		parseTokenFunc: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "raw-token", tokenString)
			return parsedToken, nil
		},
	}, &fakeTokenValidator{
		validateFunc: func(_ context.Context, rawToken string, token models.Token) (models.User, error) {
			assert.Equal(t, "raw-token", rawToken)
			assert.Equal(t, parsedToken, token)
			return resolvedUser, nil
		},
	})

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true

		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(1), userID)

		payload, ok := utils.GetAuthUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, resolvedUser.Payload(), payload)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer raw-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(&fakeAuthService{}, &fakeTokenValidator{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	rec := httptest.NewRecorder()

	h.auth(rejectNext(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(&fakeAuthService{}, &fakeTokenValidator{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(rejectNext(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	h := newTestHandler(&fakeAuthService{
		parseTokenFunc: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}, &fakeTokenValidator{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	h.auth(rejectNext(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrTokenIsExpiredOrInvalid.Error())
}

func TestAuthMiddleware_ValidatorRejects(t *testing.T) {
	h := newTestHandler(&fakeAuthService{
		parseTokenFunc: func(context.Context, string) (models.Token, error) {
			return models.Token{SignedString: "stale-token", UserID: 1}, nil
		},
	}, &fakeTokenValidator{
		validateFunc: func(context.Context, string, models.Token) (models.User, error) {
			return models.User{}, service.ErrTokenMismatch
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	h.auth(rejectNext(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrTokenMismatch.Error())
}

func TestAuthMiddleware_ValidatorInfrastructureError(t *testing.T) {
	h := newTestHandler(&fakeAuthService{
		parseTokenFunc: func(context.Context, string) (models.Token, error) {
			return models.Token{SignedString: "raw-token", UserID: 1}, nil
		},
	}, &fakeTokenValidator{
		validateFunc: func(context.Context, string, models.Token) (models.User, error) {
			return models.User{}, errors.New("redis is down")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer raw-token")
	rec := httptest.NewRecorder()

	h.auth(rejectNext(t)).ServeHTTP(rec, req)

	// every rejection path is a 401; no internals leak to the client
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// rejectNext fails the test if the guarded handler is ever reached.
func rejectNext(t *testing.T) http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next handler must not be called for a rejected request")
	})
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer", header: "Bearer abc", want: "abc"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
