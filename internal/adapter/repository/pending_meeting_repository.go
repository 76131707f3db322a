package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetmind-team/meetmind-backend/internal/domain/entities"
	"github.com/meetmind-team/meetmind-backend/internal/domain/repositories"
)

type pendingMeetingRepository struct {
	db *gorm.DB
}

// NewPendingMeetingRepository creates a pending meeting repository backed by GORM
func NewPendingMeetingRepository(db *gorm.DB) repositories.PendingMeetingRepository {
	return &pendingMeetingRepository{db: db}
}

// Create inserts a new pending meeting
func (r *pendingMeetingRepository) Create(ctx context.Context, meeting *entities.PendingMeeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a pending meeting by ID
func (r *pendingMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.PendingMeeting, error) {
	var meeting entities.PendingMeeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// UpdateJoinLink sets the join link and reports how many rows matched.
// Repeated updates overwrite without complaint.
func (r *pendingMeetingRepository) UpdateJoinLink(ctx context.Context, id uuid.UUID, joinLink string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.PendingMeeting{}).
		Where("id = ?", id).
		Update("join_link", joinLink)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes a pending meeting
func (r *pendingMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.PendingMeeting{}, "id = ?", id).Error
}
