package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/meetmind-team/meetmind-backend/internal/domain/entities"
	"github.com/meetmind-team/meetmind-backend/internal/domain/repositories"
)

type completedMeetingRepository struct {
	db *gorm.DB
}

// NewCompletedMeetingRepository creates a completed meeting repository backed by GORM
func NewCompletedMeetingRepository(db *gorm.DB) repositories.CompletedMeetingRepository {
	return &completedMeetingRepository{db: db}
}

// Create inserts a completed meeting
func (r *completedMeetingRepository) Create(ctx context.Context, meeting *entities.CompletedMeeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Create(meeting).Error
}

// ListRecent returns the most recent meetings, newest upload first
func (r *completedMeetingRepository) ListRecent(ctx context.Context, limit int) ([]*entities.CompletedMeeting, error) {
	var meetings []*entities.CompletedMeeting
	if err := r.db.WithContext(ctx).
		Order("upload_timestamp DESC").
		Limit(limit).
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}
