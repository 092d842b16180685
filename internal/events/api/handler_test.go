package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventboard/internal/events"
	"eventboard/internal/events/api"
	"eventboard/internal/logger"
	"eventboard/internal/models"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ListEvents(ctx context.Context, page, limit int) (*models.EventPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventPage), args.Error(1)
}

func (m *MockEventService) AddEvent(ctx context.Context, name, date, location string) error {
	args := m.Called(ctx, name, date, location)
	return args.Error(0)
}

func (m *MockEventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, id int64, name, date, location string) error {
	args := m.Called(ctx, id, name, date, location)
	return args.Error(0)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newRouter(service *MockEventService) *chi.Mux {
	handler := api.NewHandler(service, logger.NewTestLogger())

	r := chi.NewRouter()
	r.Get("/events", handler.List)
	r.Post("/add", handler.Add)
	r.Get("/edit/{id}", handler.EditForm)
	r.Post("/edit/{id}", handler.Edit)
	r.Post("/delete/{id}", handler.Delete)
	r.Get("/events/{id}/qr", handler.ShareQR)
	return r
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestListDefaultsAndShape(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	page := &models.EventPage{
		Events:     []models.Event{{ID: 1, Name: "Concert", Date: "2025-06-01", Location: "Warsaw"}},
		Total:      1,
		Page:       1,
		TotalPages: 1,
	}
	service.On("ListEvents", mock.Anything, 1, 10).Return(page, nil)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "events")
	assert.Contains(t, body, "total")
	assert.Contains(t, body, "page")
	assert.Contains(t, body, "totalPages")

	service.AssertExpectations(t)
}

func TestListQueryParamsForwarded(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("ListEvents", mock.Anything, 3, 5).
		Return(&models.EventPage{Events: []models.Event{}, Total: 0, Page: 3, TotalPages: 0}, nil)

	req := httptest.NewRequest(http.MethodGet, "/events?page=3&limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestListUnparseableParamsFallBack(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	// "abc" is not a number, so the defaults apply. A literal "0" would have
	// been forwarded as-is.
	service.On("ListEvents", mock.Anything, 1, 10).
		Return(&models.EventPage{Events: []models.Event{}, Total: 0, Page: 1, TotalPages: 0}, nil)

	req := httptest.NewRequest(http.MethodGet, "/events?page=abc&limit=", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestListStoreError(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("ListEvents", mock.Anything, 1, 10).Return(nil, errors.New("connection lost"))

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch events")
}

func TestAddValidationError(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("AddEvent", mock.Anything, "Concert", "2025-06-01", "New York123").
		Return(events.ErrInvalidLocation)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/add", url.Values{
		"name": {"Concert"}, "date": {"2025-06-01"}, "location": {"New York123"},
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Location must contain only alphabetic characters and spaces")
}

func TestAddSuccessRedirects(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("AddEvent", mock.Anything, "Concert", "2025-06-01", "Warsaw").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/add", url.Values{
		"name": {"Concert"}, "date": {"2025-06-01"}, "location": {"Warsaw"},
	}))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestEditFormStoreErrorFallsBack(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("GetEvent", mock.Anything, int64(9)).Return(nil, errors.New("connection lost"))

	req := httptest.NewRequest(http.MethodGet, "/edit/9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestEditSubmitRedirects(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("UpdateEvent", mock.Anything, int64(9), "Concert", "2025-06-01", "Warsaw").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/edit/9", url.Values{
		"name": {"Concert"}, "date": {"2025-06-01"}, "location": {"Warsaw"},
	}))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestDeleteOutcomes(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("DeleteEvent", mock.Anything, int64(1)).Return(true, nil)
	service.On("DeleteEvent", mock.Anything, int64(2)).Return(false, nil)
	service.On("DeleteEvent", mock.Anything, int64(3)).Return(false, errors.New("connection lost"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/delete/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Event deleted")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/delete/2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Event not found")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/delete/3", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to delete the event.")
}

func TestShareQRReturnsPNG(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("GetEvent", mock.Anything, int64(1)).
		Return(&models.Event{ID: 1, Name: "Concert", Date: "2025-06-01", Location: "Warsaw"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/events/1/qr", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestShareQRUnknownEvent(t *testing.T) {
	service := new(MockEventService)
	router := newRouter(service)

	service.On("GetEvent", mock.Anything, int64(99)).Return(nil, errors.New("sql: no rows in result set"))

	req := httptest.NewRequest(http.MethodGet, "/events/99/qr", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
