package read

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetCelebrity(ctx context.Context, id int) (*models.Celebrity, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*models.Celebrity)
	return res, args.Error(1)
}

func (m *MockService) GetAlbum(ctx context.Context, id int) (*models.Album, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*models.Album)
	return res, args.Error(1)
}

func (m *MockService) GetVideo(ctx context.Context, id int) (*models.Video, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*models.Video)
	return res, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		kind           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "celebrity found",
			kind: catalog.KindCelebrities,
			id:   "1",
			setupMock: func(m *MockService) {
				m.On("GetCelebrity", mock.Anything, 1).Return(&models.Celebrity{ID: 1, Name: "Emma Stone"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Emma Stone"`,
		},
		{
			name: "album not found",
			kind: catalog.KindAlbums,
			id:   "42",
			setupMock: func(m *MockService) {
				m.On("GetAlbum", mock.Anything, 42).Return(nil, catalog.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","message":"Album not found"}`,
		},
		{
			name: "video not found",
			kind: catalog.KindVideos,
			id:   "7",
			setupMock: func(m *MockService) {
				m.On("GetVideo", mock.Anything, 7).Return(nil, catalog.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Video not found"`,
		},
		{
			name:           "bad id",
			kind:           catalog.KindVideos,
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request data"`,
		},
		{
			name: "storage failure",
			kind: catalog.KindCelebrities,
			id:   "3",
			setupMock: func(m *MockService) {
				m.On("GetCelebrity", mock.Anything, 3).Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"status":"Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/"+tt.kind+"/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			New(logger, svc, tt.kind).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, strings.Contains(rr.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
