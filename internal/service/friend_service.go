package service

import (
	"context"

	"reelmates/internal/models"
	"reelmates/internal/repository"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendRequest creates a pending friend request from userID to targetUserID.
// At most one relationship row exists per pair of users, in either direction
// and any state.
func (s *FriendService) SendRequest(ctx context.Context, userID, targetUserID uint) (*models.Friendship, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetBetween(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsAccepted {
			return nil, models.NewConflictError("You are already friends")
		}
		return nil, models.NewConflictError("Friend request already pending")
	}

	friendship := &models.Friendship{
		RequesterID: userID,
		RecipientID: targetUserID,
	}
	// A concurrent duplicate surfaces here as a Conflict from the unique
	// pair index.
	if err := s.friendRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}
	return friendship, nil
}

// AcceptRequest accepts the pending request sent by requesterID to userID.
// Only the recipient can accept; anything else is reported as a missing
// pending request.
func (s *FriendService) AcceptRequest(ctx context.Context, userID, requesterID uint) (*models.Friendship, error) {
	accepted, err := s.friendRepo.AcceptPending(ctx, requesterID, userID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, models.NewNotFoundError("Pending friend request from user", requesterID)
	}
	return s.friendRepo.GetBetween(ctx, userID, requesterID)
}

// GetFriends returns the accepted friends of the user.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

// GetIncomingRequests returns the users with a pending request to userID.
func (s *FriendService) GetIncomingRequests(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.GetIncoming(ctx, userID)
}

// Remove deletes the relationship between the two users, whether it is an
// accepted friendship or a still-pending request.
func (s *FriendService) Remove(ctx context.Context, userID, targetUserID uint) error {
	removed, err := s.friendRepo.RemoveBetween(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("Relationship with user", targetUserID)
	}
	return nil
}
