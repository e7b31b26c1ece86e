package actions

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/snapgram/snapgram/internal/models"
)

// LikePost toggles the acting user's like on a post
func (s *Service) LikePost(ctx context.Context, in LikePostInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Like Post."}, nil
	}

	post, err := s.posts.FindPost(ctx, in.PostID)
	if err != nil {
		return Result{}, err
	}
	if post == nil {
		return Result{}, ErrNotFound
	}

	key := models.PairKey{SubjectID: in.PostID, ActorID: userID}
	outcome, err := toggleRelation(ctx, s.relations, models.RelationLike, key)
	if err != nil {
		s.logger.Error("Failed to toggle like", zap.String("post_id", in.PostID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Like Post."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed, scopePost(in.PostID))
	if outcome == ToggleRemoved {
		return Result{Message: "Post Unliked Successfully"}, nil
	}
	return Result{Message: "Post Liked Successfully"}, nil
}

// BookmarkPost toggles the acting user's bookmark on a post
func (s *Service) BookmarkPost(ctx context.Context, in BookmarkPostInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Bookmark Post."}, nil
	}

	post, err := s.posts.FindPost(ctx, in.PostID)
	if err != nil {
		return Result{}, err
	}
	if post == nil {
		return Result{}, ErrNotFound
	}

	key := models.PairKey{SubjectID: in.PostID, ActorID: userID}
	outcome, err := toggleRelation(ctx, s.relations, models.RelationSave, key)
	if err != nil {
		s.logger.Error("Failed to toggle bookmark", zap.String("post_id", in.PostID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Bookmark Post."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed, scopePost(in.PostID))
	if outcome == ToggleRemoved {
		return Result{Message: "Unbookmarked Post."}, nil
	}
	return Result{Message: "Bookmarked Post."}, nil
}

// CreateComment adds a comment by the acting user to a post
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Create Comment."}, nil
	}

	post, err := s.posts.FindPost(ctx, in.PostID)
	if err != nil {
		return Result{}, err
	}
	if post == nil {
		return Result{}, ErrNotFound
	}

	comment := &models.Comment{
		ID:     uuid.NewString(),
		Body:   in.Body,
		PostID: in.PostID,
		UserID: userID,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		s.logger.Error("Failed to create comment", zap.String("post_id", in.PostID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Create Comment."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed, scopePost(in.PostID))
	return Result{Message: "Created Comment."}, nil
}

// DeleteComment removes a comment the acting user authored
func (s *Service) DeleteComment(ctx context.Context, in DeleteCommentInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Delete Comment."}, nil
	}

	comment, err := s.comments.FindComment(ctx, in.ID)
	if err != nil {
		return Result{}, err
	}
	if comment == nil {
		return Result{}, ErrNotFound
	}
	if comment.UserID != userID {
		return Result{}, ErrNotOwner
	}

	if err := s.comments.DeleteComment(ctx, in.ID); err != nil {
		s.logger.Error("Failed to delete comment", zap.String("comment_id", in.ID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Delete Comment."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed, scopePost(comment.PostID))
	return Result{Message: "Comment Deleted Successfully"}, nil
}
