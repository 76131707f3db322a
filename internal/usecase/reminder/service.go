package reminder

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetmind-team/meetmind-backend/errors"
	"github.com/meetmind-team/meetmind-backend/internal/domain/entities"
	"github.com/meetmind-team/meetmind-backend/internal/domain/repositories"
	"github.com/meetmind-team/meetmind-backend/internal/infrastructure/external/automation"
)

// Notifier delivers a reminder payload to the automation platform.
type Notifier interface {
	Notify(ctx context.Context, payload automation.ReminderPayload) error
}

// ScheduleInput carries the caller-supplied fields of a schedule request.
type ScheduleInput struct {
	Title     string
	StartTime string
	EndTime   string
	Message   string
	Attendees []string
}

// Service owns the pending meeting lifecycle: create, await the external
// link, resolve, serve.
type Service interface {
	ScheduleReminder(ctx context.Context, in ScheduleInput) (string, error)
	UpdateMeetingLink(ctx context.Context, meetingID, joinLink string) error
	GetMeetingLink(ctx context.Context, meetingID string) (*string, error)
}

type reminderService struct {
	pendingRepo repositories.PendingMeetingRepository
	notifier    Notifier
	logger      *zap.Logger
}

// NewService constructs a reminder service
func NewService(pendingRepo repositories.PendingMeetingRepository, notifier Notifier, logger *zap.Logger) Service {
	return &reminderService{
		pendingRepo: pendingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// ScheduleReminder inserts an unresolved pending meeting, then fires the
// automation webhook. The insert must land before the webhook call: the ID
// embedded in the payload has to be durable when the platform calls back.
// A failed webhook call triggers the compensating delete; there is no
// transaction spanning the store and the external call.
func (s *reminderService) ScheduleReminder(ctx context.Context, in ScheduleInput) (string, error) {
	meeting := entities.NewPendingMeeting(in.Title, in.StartTime, in.EndTime, in.Message, in.Attendees)
	if err := s.pendingRepo.Create(ctx, meeting); err != nil {
		return "", apperrors.ErrDBQueryFailed(err)
	}

	payload := automation.ReminderPayload{
		MeetingID:      meeting.ID.String(),
		MeetingTitle:   in.Title,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		MeetingMessage: in.Message,
		AttendeeEmails: strings.Join(in.Attendees, ", "),
	}

	if err := s.notifier.Notify(ctx, payload); err != nil {
		if s.logger != nil {
			s.logger.Error("automation webhook delivery failed, rolling back pending meeting",
				zap.String("meeting_id", meeting.ID.String()),
				zap.Error(err),
			)
		}
		// Best-effort compensation. A failed delete leaves an orphaned
		// unresolved record behind; log it, never mask the original error.
		if delErr := s.pendingRepo.Delete(ctx, meeting.ID); delErr != nil {
			if s.logger != nil {
				s.logger.Error("compensation failed, orphaned pending meeting left in store",
					zap.String("meeting_id", meeting.ID.String()),
					zap.Error(delErr),
				)
			}
		}
		return "", apperrors.ErrWebhookDeliveryFailed(err)
	}

	return meeting.ID.String(), nil
}

// UpdateMeetingLink resolves a pending meeting. Intended caller is the
// automation platform callback; there is no caller authentication and no
// idempotency token, so repeated calls simply overwrite (last write wins).
func (s *reminderService) UpdateMeetingLink(ctx context.Context, meetingID, joinLink string) error {
	id, err := uuid.Parse(meetingID)
	if err != nil {
		return apperrors.ErrInvalidMeetingID(meetingID, err)
	}

	rows, err := s.pendingRepo.UpdateJoinLink(ctx, id, joinLink)
	if err != nil {
		return apperrors.ErrDBQueryFailed(err)
	}
	if rows == 0 {
		return apperrors.ErrMeetingNotFound(meetingID)
	}

	if s.logger != nil {
		s.logger.Info("meeting link resolved",
			zap.String("meeting_id", meetingID),
		)
	}
	return nil
}

// GetMeetingLink returns the join link as stored, which is nil until the
// automation platform resolves it. Clients poll this until non-null; the
// retry cadence is theirs to choose.
func (s *reminderService) GetMeetingLink(ctx context.Context, meetingID string) (*string, error) {
	id, err := uuid.Parse(meetingID)
	if err != nil {
		return nil, apperrors.ErrInvalidMeetingID(meetingID, err)
	}

	meeting, err := s.pendingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound(meetingID)
	}
	return meeting.JoinLink, nil
}
