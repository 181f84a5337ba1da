package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/membership"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Submit(ctx context.Context, input models.MembershipRequestInput) (*models.MembershipRequest, error) {
	args := m.Called(ctx, input)
	req, _ := args.Get(0).(*models.MembershipRequest)
	return req, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	input := models.MembershipRequestInput{UserID: 1, Plan: "15-days", Price: "20.00", PaymentMethod: "card"}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "request created",
			body: `{"userId":1,"plan":"15-days","price":"20.00","paymentMethod":"card"}`,
			setupMock: func(m *MockService) {
				m.On("Submit", mock.Anything, input).Return(&models.MembershipRequest{
					ID: 1, UserID: 1, Plan: "15-days", Price: "20.00", PaymentMethod: "card",
					Status: models.StatusPending, CreatedAt: time.Now(),
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"pending"`,
		},
		{
			name:           "unknown plan",
			body:           `{"userId":1,"plan":"7-days","price":"20.00","paymentMethod":"card"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request data"`,
		},
		{
			name:           "missing payment method",
			body:           `{"userId":1,"plan":"3-days","price":"9.99"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request data"`,
		},
		{
			name: "unknown user",
			body: `{"userId":1,"plan":"15-days","price":"20.00","paymentMethod":"card"}`,
			setupMock: func(m *MockService) {
				m.On("Submit", mock.Anything, input).Return(nil, membership.ErrUnknownUser).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request data"`,
		},
		{
			name: "storage failure",
			body: `{"userId":1,"plan":"15-days","price":"20.00","paymentMethod":"card"}`,
			setupMock: func(m *MockService) {
				m.On("Submit", mock.Anything, input).Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"status":"Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/membership/request", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			assert.True(t, json.Valid(rr.Body.Bytes()))
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateHandler_ResponseShape(t *testing.T) {
	svc := new(MockService)
	svc.On("Submit", mock.Anything, mock.Anything).Return(&models.MembershipRequest{
		ID: 5, UserID: 1, Plan: "3-days", Price: "9.99", PaymentMethod: "card", Status: models.StatusPending,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/membership/request",
		bytes.NewBufferString(`{"userId":1,"plan":"3-days","price":"9.99","paymentMethod":"card"}`))
	rr := httptest.NewRecorder()
	New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc).ServeHTTP(rr, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.EqualValues(t, 5, body["id"])
	assert.EqualValues(t, 1, body["userId"])
	assert.Nil(t, body["approvedAt"])
}
