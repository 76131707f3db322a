package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PendingMeeting represents a meeting requested but not yet confirmed by the
// automation platform. JoinLink stays nil until the platform reports the
// created meeting back through the link-update callback.
type PendingMeeting struct {
	ID        uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key"`
	Title     string                      `json:"title" gorm:"type:varchar(255);not null"`
	StartTime string                      `json:"startTime" gorm:"type:varchar(64);not null"`
	EndTime   string                      `json:"endTime" gorm:"type:varchar(64)"`
	Message   string                      `json:"message" gorm:"type:text"`
	Attendees datatypes.JSONSlice[string] `json:"attendees" gorm:"type:jsonb"`
	JoinLink  *string                     `json:"hangoutLink" gorm:"type:text"`
	CreatedAt time.Time                   `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (PendingMeeting) TableName() string {
	return "pending_meetings"
}

// NewPendingMeeting creates an unresolved pending meeting with a fresh ID.
func NewPendingMeeting(title, startTime, endTime, message string, attendees []string) *PendingMeeting {
	return &PendingMeeting{
		ID:        uuid.New(),
		Title:     title,
		StartTime: startTime,
		EndTime:   endTime,
		Message:   message,
		Attendees: datatypes.NewJSONSlice(attendees),
	}
}

// IsResolved reports whether the automation platform has set the join link.
func (m *PendingMeeting) IsResolved() bool {
	return m.JoinLink != nil
}
