package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/azimovr/go-user-admin/internal/service"
	"github.com/azimovr/go-user-admin/internal/utils"
	"github.com/azimovr/go-user-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	const subject = "665f1cabc0ffee0123456789"

	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header without token part",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without subject",
			authHeader: "Bearer subjectless",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, nil
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token reaches next handler",
			authHeader: "Bearer good-token",
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				assert.Equal(t, "good-token", tokenString)
				return parsedToken(subject), nil
			},
			expectedStatus: http.StatusNoContent,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				accountID, ok := utils.GetAccountIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, subject, accountID)

				w.WriteHeader(http.StatusNoContent)
			})

			h := newTestHandler(&mockAuthService{parseTokenFn: tt.parseTokenFn}, &mockAccountService{})
			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}
