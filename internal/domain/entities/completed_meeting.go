package entities

import (
	"time"

	"github.com/google/uuid"
)

// CompletedMeeting is an immutable record of a processed recording. It is
// written in one insert only after both transcription and summarization
// succeeded; a transcript without a summary is never stored.
type CompletedMeeting struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Filename        string    `json:"filename" gorm:"type:varchar(512);not null"`
	UploadTimestamp time.Time `json:"upload_timestamp" gorm:"not null;index"`
	Transcript      string    `json:"transcript" gorm:"type:text;not null"`
	Summary         string    `json:"summary" gorm:"type:text;not null"`
}

// TableName specifies the table name for GORM
func (CompletedMeeting) TableName() string {
	return "completed_meetings"
}

// NewCompletedMeeting creates a completed meeting stamped with the current
// upload time.
func NewCompletedMeeting(filename, transcript, summary string) *CompletedMeeting {
	return &CompletedMeeting{
		ID:              uuid.New(),
		Filename:        filename,
		UploadTimestamp: time.Now().UTC(),
		Transcript:      transcript,
		Summary:         summary,
	}
}
