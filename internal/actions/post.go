package actions

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/snapgram/snapgram/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreatePost publishes a new post owned by the acting user
func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Create Post."}, nil
	}

	post := &models.Post{
		ID:      uuid.NewString(),
		FileURL: in.FileURL,
		Caption: nullString(in.Caption),
		UserID:  userID,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		s.logger.Error("Failed to create post", zap.String("user_id", userID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Create Post."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed)
	return Result{Redirect: RedirectFeed}, nil
}

// UpdatePost changes the caption and file URL of a post the acting user owns
func (s *Service) UpdatePost(ctx context.Context, in UpdatePostInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Update Post."}, nil
	}

	post, err := s.posts.FindPost(ctx, in.ID)
	if err != nil {
		return Result{}, err
	}
	if post == nil {
		return Result{}, ErrNotFound
	}
	if post.UserID != userID {
		return Result{}, ErrNotOwner
	}

	post.FileURL = in.FileURL
	post.Caption = nullString(in.Caption)
	if err := s.posts.UpdatePost(ctx, post); err != nil {
		s.logger.Error("Failed to update post", zap.String("post_id", in.ID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Update Post."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed, scopePost(in.ID))
	return Result{Redirect: RedirectFeed}, nil
}

// DeletePost removes a post the acting user owns, cascading its likes,
// bookmarks and comments
func (s *Service) DeletePost(ctx context.Context, in DeletePostInput) (Result, error) {
	userID, err := ActingUser(ctx)
	if err != nil {
		return Result{}, err
	}

	if fields := s.validator.Validate(in); fields != nil {
		return Result{Errors: fields, Message: "Missing Fields. Failed to Delete Post."}, nil
	}

	post, err := s.posts.FindPost(ctx, in.ID)
	if err != nil {
		return Result{}, err
	}
	if post == nil {
		return Result{}, ErrNotFound
	}
	if post.UserID != userID {
		return Result{}, ErrNotOwner
	}

	if err := s.posts.DeletePost(ctx, in.ID); err != nil {
		s.logger.Error("Failed to delete post", zap.String("post_id", in.ID), zap.Error(err))
		return Result{Message: "Database Error: Failed to Delete Post."}, nil
	}

	s.views.Invalidate(ctx, ScopeFeed, scopePost(in.ID))
	return Result{Message: "Post Deleted Successfully"}, nil
}
