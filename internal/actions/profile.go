package actions

import (
	"context"

	"go.uber.org/zap"

	"github.com/snapgram/snapgram/internal/models"
)

// UpdateProfile updates the acting user's profile fields
func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Update Profile."}, nil
	}

	user, err := s.users.FindUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	if user == nil {
		return Result{}, ErrNotFound
	}

	user.Username = in.Username
	user.Name = nullString(in.Name)
	user.Bio = nullString(in.Bio)
	user.Gender = nullString(in.Gender)
	user.Image = nullString(in.Image)
	user.Website = nullString(in.Website)
	if err := s.users.UpdateUser(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.String("user_id", userID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Update Profile."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed, scopeProfile(userID))
	return Result{Message: "Updated Profile."}, nil
}

// FollowUser toggles a follow edge from the acting user to another user.
// Following yourself is rejected as a validation failure.
func (s *Service) FollowUser(ctx context.Context, in FollowUserInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Follow User."}, nil
	}
	if in.ID == userID {
		return Result{
			Errors:  map[string][]string{"id": {"you cannot follow yourself"}},
			Message: "Failed to Follow User.",
		}, nil
	}

	target, err := s.users.FindUser(ctx, in.ID)
	if err != nil {
		return Result{}, err
	}
	if target == nil {
		return Result{}, ErrNotFound
	}

	key := models.PairKey{SubjectID: in.ID, ActorID: userID}
	outcome, err := toggleRelation(ctx, s.relations, models.RelationFollow, key)
	if err != nil {
		s.logger.Error("Failed to toggle follow", zap.String("following_id", in.ID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Follow User."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed, scopeProfile(userID), scopeProfile(in.ID))
	if outcome == ToggleRemoved {
		return Result{Message: "Unfollowed User."}, nil
	}
	return Result{Message: "Followed User."}, nil
}
