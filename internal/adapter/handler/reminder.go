package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/meetmind-team/meetmind-backend/errors"
	meetingdto "github.com/meetmind-team/meetmind-backend/internal/adapter/dto/meeting"
	"github.com/meetmind-team/meetmind-backend/internal/usecase/reminder"
)

// Reminder handles the scheduling endpoints and the automation platform
// callback.
type Reminder struct {
	svc    reminder.Service
	logger *zap.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(svc reminder.Service, logger *zap.Logger) *Reminder {
	return &Reminder{svc: svc, logger: logger}
}

// ScheduleReminder creates a pending meeting and notifies the automation
// platform. Success means "accepted for processing"; the join link arrives
// later through UpdateMeetingLink.
func (h *Reminder) ScheduleReminder(c echo.Context) error {
	var req meetingdto.ScheduleReminderRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	meetingID, err := h.svc.ScheduleReminder(c.Request().Context(), reminder.ScheduleInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Message:   req.Message,
		Attendees: req.Attendees,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.ScheduleReminderResponse{
		Message:   "Reminder request sent! Polling for meeting link...",
		MeetingID: meetingID,
	})
}

// UpdateMeetingLink is the out-of-band callback invoked by the automation
// platform once the meeting resource exists.
func (h *Reminder) UpdateMeetingLink(c echo.Context) error {
	var req meetingdto.UpdateMeetingLinkRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	if err := h.svc.UpdateMeetingLink(c.Request().Context(), req.MeetingID, req.HangoutLink); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.UpdateMeetingLinkResponse{Status: "success"})
}

// GetMeetingLink serves the join link, null until resolved. Clients poll
// this endpoint; there is no push or long-poll mechanism.
func (h *Reminder) GetMeetingLink(c echo.Context) error {
	link, err := h.svc.GetMeetingLink(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.MeetingLinkResponse{HangoutLink: link})
}
