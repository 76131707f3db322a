package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/meetmind-team/meetmind-backend/pkg/config"
)

func newRoutedEcho(prefix string) *echo.Echo {
	e := newTestEcho()
	cfg := &config.Config{}
	cfg.Server.RoutePrefix = prefix
	cfg.Server.Environment = "test"

	link := "https://meet.example.com/abc"
	reminderHandler := NewReminderHandler(&stubReminderService{link: &link}, zap.NewNop())
	meetingHandler := NewMeetingHandler(&stubTranscriptionService{}, zap.NewNop())
	NewRouter(cfg, reminderHandler, meetingHandler).Setup(e)
	return e
}

func TestRoutesUnderPrefix(t *testing.T) {
	e := newRoutedEcho("/api")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-meeting-link/0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hangoutLink":"https://meet.example.com/abc"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/meetings", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"MeetMind backend is operational."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesWithoutPrefix(t *testing.T) {
	e := newRoutedEcho("/")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meetings", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"MeetMind backend is operational."}`, rec.Body.String())
}
