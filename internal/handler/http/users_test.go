package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/azimovr/go-user-admin/internal/store"
	"github.com/azimovr/go-user-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func doAuthed(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	router := h.Init()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListAccounts(t *testing.T) {
	accounts := &mockAccountService{
		listFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{ID: primitive.NewObjectID(), Username: "first", Email: "first@example.com"},
				{ID: primitive.NewObjectID(), Username: "second", Email: "second@example.com"},
			}, nil
		},
	}
	h := newTestHandler(allowAllAuth(), accounts)

	rr := doAuthed(h, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var body []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body, 2)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestListAccounts_RequiresAuth(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockAccountService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetAccount_PassesPathID(t *testing.T) {
	accountID := primitive.NewObjectID()
	accounts := &mockAccountService{
		getFn: func(_ context.Context, id string) (models.User, error) {
			assert.Equal(t, accountID.Hex(), id)
			return models.User{ID: accountID, Username: "rasul", Email: "rasul@example.com"}, nil
		},
	}
	h := newTestHandler(allowAllAuth(), accounts)

	rr := doAuthed(h, http.MethodGet, "/users/"+accountID.Hex(), "")

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestGetAccount_ErrorMapping_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "unknown id", serviceErr: store.ErrNoAccountWasFound, wantStatus: http.StatusNotFound},
		{name: "malformed id", serviceErr: store.ErrInvalidAccountID, wantStatus: http.StatusBadRequest},
		{name: "store failure masked", serviceErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &mockAccountService{
				getFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}
			h := newTestHandler(allowAllAuth(), accounts)

			rr := doAuthed(h, http.MethodGet, "/users/whatever", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateAccount_PutAndPatchShareSemantics(t *testing.T) {
	accountID := primitive.NewObjectID()

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			accounts := &mockAccountService{
				updateFn: func(_ context.Context, id string, request models.UpdateRequest) (models.User, error) {
					assert.Equal(t, accountID.Hex(), id)
					require.NotNil(t, request.Username)
					assert.Equal(t, "renamed", *request.Username)
					assert.Nil(t, request.Password)
					return models.User{ID: accountID, Username: *request.Username}, nil
				},
			}
			h := newTestHandler(allowAllAuth(), accounts)

			rr := doAuthed(h, method, "/users/"+accountID.Hex(), `{"username":"renamed"}`)

			require.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestUpdateAccount_UnknownFieldFailsClosed(t *testing.T) {
	called := false
	accounts := &mockAccountService{
		updateFn: func(_ context.Context, _ string, _ models.UpdateRequest) (models.User, error) {
			called = true
			return models.User{}, nil
		},
	}
	h := newTestHandler(allowAllAuth(), accounts)

	rr := doAuthed(h, http.MethodPatch, "/users/665f1cabc0ffee0123456789", `{"role":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestDeleteAccount_ConfirmationBody(t *testing.T) {
	accounts := &mockAccountService{
		deleteFn: func(_ context.Context, id string) error {
			assert.Equal(t, "665f1cabc0ffee0123456789", id)
			return nil
		},
	}
	h := newTestHandler(allowAllAuth(), accounts)

	rr := doAuthed(h, http.MethodDelete, "/users/665f1cabc0ffee0123456789", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deleted":true}`, rr.Body.String())
}

func TestDeleteAccount_NotFound(t *testing.T) {
	accounts := &mockAccountService{
		deleteFn: func(_ context.Context, _ string) error {
			return store.ErrNoAccountWasFound
		},
	}
	h := newTestHandler(allowAllAuth(), accounts)

	rr := doAuthed(h, http.MethodDelete, "/users/665f1cabc0ffee0123456789", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateAccount_Authenticated(t *testing.T) {
	accounts := &mockAccountService{
		createFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{ID: primitive.NewObjectID(), Username: request.Username, Email: request.Email}, nil
		},
	}
	h := newTestHandler(allowAllAuth(), accounts)

	rr := doAuthed(h, http.MethodPost, "/users", `{"username":"rasul","email":"rasul@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
}
