package repository

import (
	"context"
	"errors"

	"reelmates/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friendship data operations
type FriendRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	GetBetween(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error)
	AcceptPending(ctx context.Context, requesterID, recipientID uint) (bool, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	GetIncoming(ctx context.Context, userID uint) ([]models.User, error)
	RemoveBetween(ctx context.Context, userID1, userID2 uint) (bool, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// Create inserts a pending request row. The unique index on the normalized
// pair turns a concurrent duplicate insert into a Conflict error here.
func (r *friendRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Relationship already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetBetween finds the relationship row for the unordered pair, in either
// direction and any acceptance state. Returns (nil, nil) when none exists.
func (r *friendRepository) GetBetween(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

// AcceptPending flips the pending row requester->recipient to accepted.
// Returns false when no such pending row exists (no request, already
// accepted, or wrong direction). The single conditional UPDATE makes the
// check and the flip atomic.
func (r *friendRepository) AcceptPending(ctx context.Context, requesterID, recipientID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("requester_id = ? AND recipient_id = ? AND is_accepted = ?", requesterID, recipientID, false).
		Update("is_accepted", true)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetFriends returns the users connected to userID by an accepted row in
// either column position.
func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON (users.id = f.requester_id OR users.id = f.recipient_id)").
		Where("f.is_accepted = ? AND (f.requester_id = ? OR f.recipient_id = ?) AND users.id != ?",
			true, userID, userID, userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// GetIncoming returns the senders of requests to userID that are still pending.
func (r *friendRepository) GetIncoming(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON users.id = f.requester_id").
		Where("f.recipient_id = ? AND f.is_accepted = ?", userID, false).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// RemoveBetween deletes the relationship row for the unordered pair,
// regardless of acceptance state. Returns false when no row existed.
func (r *friendRepository) RemoveBetween(ctx context.Context, userID1, userID2 uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			userID1, userID2, userID2, userID1).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
