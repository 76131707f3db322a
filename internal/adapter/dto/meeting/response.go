package meeting

import (
	"time"

	"github.com/meetmind-team/meetmind-backend/internal/domain/entities"
)

// ScheduleReminderResponse acknowledges a schedule request. The link is not
// known yet; the client polls get-meeting-link with the returned ID.
type ScheduleReminderResponse struct {
	Message   string `json:"message"`
	MeetingID string `json:"meetingId"`
}

// UpdateMeetingLinkResponse acknowledges a link-update callback.
type UpdateMeetingLinkResponse struct {
	Status string `json:"status"`
}

// MeetingLinkResponse carries the join link as stored, null until resolved.
type MeetingLinkResponse struct {
	HangoutLink *string `json:"hangoutLink"`
}

// TranscriptionResponse is the synchronous result of a processed upload.
type TranscriptionResponse struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}

// CompletedMeetingResponse is the public shape of a completed meeting.
type CompletedMeetingResponse struct {
	ID              string    `json:"id"`
	Filename        string    `json:"filename"`
	UploadTimestamp time.Time `json:"upload_timestamp"`
	Transcript      string    `json:"transcript"`
	Summary         string    `json:"summary"`
}

// NewCompletedMeetingResponse maps an entity to its public shape.
func NewCompletedMeetingResponse(m *entities.CompletedMeeting) CompletedMeetingResponse {
	return CompletedMeetingResponse{
		ID:              m.ID.String(),
		Filename:        m.Filename,
		UploadTimestamp: m.UploadTimestamp,
		Transcript:      m.Transcript,
		Summary:         m.Summary,
	}
}
