package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/meetmind-team/meetmind-backend/errors"
	"github.com/meetmind-team/meetmind-backend/internal/usecase/reminder"
	pkgvalidator "github.com/meetmind-team/meetmind-backend/pkg/validator"
)

type stubReminderService struct {
	scheduleID  string
	scheduleErr error
	scheduleIn  reminder.ScheduleInput
	updateErr   error
	updatedID   string
	updatedLink string
	link        *string
	getErr      error
}

func (s *stubReminderService) ScheduleReminder(ctx context.Context, in reminder.ScheduleInput) (string, error) {
	s.scheduleIn = in
	return s.scheduleID, s.scheduleErr
}

func (s *stubReminderService) UpdateMeetingLink(ctx context.Context, meetingID, joinLink string) error {
	s.updatedID = meetingID
	s.updatedLink = joinLink
	return s.updateErr
}

func (s *stubReminderService) GetMeetingLink(ctx context.Context, meetingID string) (*string, error) {
	return s.link, s.getErr
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func TestScheduleReminderEndpoint(t *testing.T) {
	svc := &stubReminderService{scheduleID: "0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f"}
	h := NewReminderHandler(svc, zap.NewNop())
	e := newTestEcho()

	body := `{"title":"Sync","startTime":"2024-01-01T10:00","endTime":"2024-01-01T10:30","message":"Weekly","attendees":["a@example.com"]}`
	req := httptest.NewRequest(http.MethodPost, "/schedule-reminder", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ScheduleReminder(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Reminder request sent! Polling for meeting link...", resp["message"])
	assert.Equal(t, "0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f", resp["meetingId"])

	assert.Equal(t, "Sync", svc.scheduleIn.Title)
	assert.Equal(t, []string{"a@example.com"}, svc.scheduleIn.Attendees)
}

func TestScheduleReminderMissingTitle(t *testing.T) {
	h := NewReminderHandler(&stubReminderService{}, zap.NewNop())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/schedule-reminder", strings.NewReader(`{"startTime":"2024-01-01T10:00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ScheduleReminder(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleReminderWebhookFailure(t *testing.T) {
	svc := &stubReminderService{scheduleErr: apperrors.ErrWebhookDeliveryFailed(assert.AnError)}
	h := NewReminderHandler(svc, zap.NewNop())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/schedule-reminder", strings.NewReader(`{"title":"Sync","startTime":"2024-01-01T10:00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ScheduleReminder(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(apperrors.ErrorCode_WEBHOOK_FAILED), resp["code"])
	assert.NotEmpty(t, resp["message"])
}

func TestUpdateMeetingLinkEndpoint(t *testing.T) {
	svc := &stubReminderService{}
	h := NewReminderHandler(svc, zap.NewNop())
	e := newTestEcho()

	body := `{"meetingId":"0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f","hangoutLink":"https://meet.example.com/abc"}`
	req := httptest.NewRequest(http.MethodPost, "/update-meeting-link", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.UpdateMeetingLink(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())

	assert.Equal(t, "0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f", svc.updatedID)
	assert.Equal(t, "https://meet.example.com/abc", svc.updatedLink)
}

func TestUpdateMeetingLinkUnknownMeeting(t *testing.T) {
	svc := &stubReminderService{updateErr: apperrors.ErrMeetingNotFound("0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f")}
	h := NewReminderHandler(svc, zap.NewNop())
	e := newTestEcho()

	body := `{"meetingId":"0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f","hangoutLink":"https://meet.example.com/abc"}`
	req := httptest.NewRequest(http.MethodPost, "/update-meeting-link", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.UpdateMeetingLink(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMeetingLinkMissingFields(t *testing.T) {
	h := NewReminderHandler(&stubReminderService{}, zap.NewNop())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/update-meeting-link", strings.NewReader(`{"meetingId":"abc"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.UpdateMeetingLink(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMeetingLinkUnresolved(t *testing.T) {
	h := NewReminderHandler(&stubReminderService{link: nil}, zap.NewNop())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/get-meeting-link/0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("meetingId")
	c.SetParamValues("0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f")

	require.NoError(t, h.GetMeetingLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hangoutLink":null}`, rec.Body.String())
}

func TestGetMeetingLinkResolved(t *testing.T) {
	link := "https://meet.example.com/abc"
	h := NewReminderHandler(&stubReminderService{link: &link}, zap.NewNop())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/get-meeting-link/0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("meetingId")
	c.SetParamValues("0d9f6a8e-9a3f-4f19-8c1a-1f2b3c4d5e6f")

	require.NoError(t, h.GetMeetingLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hangoutLink":"https://meet.example.com/abc"}`, rec.Body.String())
}

func TestGetMeetingLinkMalformedID(t *testing.T) {
	svc := &stubReminderService{getErr: apperrors.ErrInvalidMeetingID("42", assert.AnError)}
	h := NewReminderHandler(svc, zap.NewNop())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/get-meeting-link/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("meetingId")
	c.SetParamValues("42")

	require.NoError(t, h.GetMeetingLink(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
