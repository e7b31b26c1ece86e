package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snapgram/snapgram/internal/actions"
	"github.com/snapgram/snapgram/pkg/telemetry"
)

// respond translates the uniform action outcome to an HTTP response.
// Validation failures carry a field-error map and come back as 422; hard
// failures (missing identity, missing entity, ownership) become their status
// code; everything else is a 200 with the result body.
func (r *Router) respond(c *gin.Context, res actions.Result, err error) {
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			r.logger.Error("Action failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		c.JSON(status, gin.H{"message": messageFor(err)})
		return
	}
	if res.Errors != nil {
		c.JSON(http.StatusUnprocessableEntity, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (r *Router) createPost(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.create_post")
	defer span.End()

	var in actions.CreatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	res, err := r.actions.CreatePost(ctx, in)
	r.respond(c, res, err)
}

func (r *Router) updatePost(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.update_post")
	defer span.End()

	var in actions.UpdatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	in.ID = c.Param("id")

	res, err := r.actions.UpdatePost(ctx, in)
	r.respond(c, res, err)
}

func (r *Router) deletePost(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.delete_post")
	defer span.End()

	in := actions.DeletePostInput{ID: c.Param("id")}

	res, err := r.actions.DeletePost(ctx, in)
	r.respond(c, res, err)
}

func (r *Router) likePost(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.like_post")
	defer span.End()

	in := actions.LikePostInput{PostID: c.Param("id")}

	res, err := r.actions.LikePost(ctx, in)
	r.respond(c, res, err)
}

func (r *Router) bookmarkPost(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.bookmark_post")
	defer span.End()

	in := actions.BookmarkPostInput{PostID: c.Param("id")}

	res, err := r.actions.BookmarkPost(ctx, in)
	r.respond(c, res, err)
}

func (r *Router) createComment(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.create_comment")
	defer span.End()

	var in actions.CreateCommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	in.PostID = c.Param("id")

	res, err := r.actions.CreateComment(ctx, in)
	r.respond(c, res, err)
}

func (r *Router) deleteComment(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.delete_comment")
	defer span.End()

	in := actions.DeleteCommentInput{ID: c.Param("id")}

	res, err := r.actions.DeleteComment(ctx, in)
	r.respond(c, res, err)
}

func (r *Router) updateProfile(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.update_profile")
	defer span.End()

	var in actions.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	res, err := r.actions.UpdateProfile(ctx, in)
	r.respond(c, res, err)
}

func (r *Router) followUser(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "actions.follow_user")
	defer span.End()

	in := actions.FollowUserInput{ID: c.Param("id")}

	res, err := r.actions.FollowUser(ctx, in)
	r.respond(c, res, err)
}
