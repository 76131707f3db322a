package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetmind-team/meetmind-backend/internal/domain/entities"
)

// PendingMeetingRepository handles pending meeting persistence
type PendingMeetingRepository interface {
	// Create inserts a new pending meeting.
	Create(ctx context.Context, meeting *entities.PendingMeeting) error
	// FindByID retrieves a pending meeting, returning (nil, nil) when no
	// record matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.PendingMeeting, error)
	// UpdateJoinLink sets the join link and returns the number of matched
	// rows. Zero means the ID is unknown. Last write wins.
	UpdateJoinLink(ctx context.Context, id uuid.UUID, joinLink string) (int64, error)
	// Delete removes a pending meeting. Used only as saga compensation when
	// the outbound webhook call fails.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompletedMeetingRepository handles completed meeting persistence
type CompletedMeetingRepository interface {
	// Create inserts a completed meeting.
	Create(ctx context.Context, meeting *entities.CompletedMeeting) error
	// ListRecent returns up to limit meetings ordered by upload timestamp
	// descending.
	ListRecent(ctx context.Context, limit int) ([]*entities.CompletedMeeting, error)
}
