package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/auth"
)

type RegisterServiceMock struct {
	mock.Mock
}

func (m *RegisterServiceMock) Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.PublicUser)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username:      "jane",
		Password:      "secret1",
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		DateOfBirth:   "1990-01-01",
		ContactNumber: "+10000000000",
	}
}

func TestRegisterHandler(t *testing.T) {
	valid, err := json.Marshal(validRequest())
	require.NoError(t, err)

	longReq := validRequest()
	longReq.Password = strings.Repeat("a", 80)
	long, err := json.Marshal(longReq)
	require.NoError(t, err)

	tests := []struct {
		name           string
		body           []byte
		mockCall       bool
		mockUser       *models.PublicUser
		mockErr        error
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "success",
			body:           valid,
			mockCall:       true,
			mockUser:       &models.PublicUser{ID: 2, Username: "jane", Role: models.RoleUser},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           []byte(`{"username":`),
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Invalid request data",
		},
		{
			name:           "invalid email",
			body:           []byte(`{"username":"jane","password":"secret1","firstName":"J","lastName":"D","email":"nope","dateOfBirth":"x","contactNumber":"1"}`),
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Invalid request data",
		},
		{
			name:           "password longer than 72 characters",
			body:           long,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Invalid request data",
		},
		{
			name:           "password longer than 72 bytes",
			body:           valid,
			mockCall:       true,
			mockErr:        auth.ErrPasswordTooLong,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Invalid request data",
		},
		{
			name:           "duplicate username",
			body:           valid,
			mockCall:       true,
			mockErr:        auth.ErrUsernameTaken,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Username already exists",
		},
		{
			name:           "duplicate email",
			body:           valid,
			mockCall:       true,
			mockErr:        auth.ErrEmailTaken,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Email already exists",
		},
		{
			name:           "storage failure",
			body:           valid,
			mockCall:       true,
			mockErr:        errors.New("db down"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(RegisterServiceMock)
			if tt.mockCall {
				svc.On("Register", mock.Anything, validRequest()).Return(tt.mockUser, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body["message"])
			} else {
				user := body["user"].(map[string]any)
				assert.Equal(t, "user", user["role"])
			}
			svc.AssertExpectations(t)
		})
	}
}
