package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snapgram/snapgram/internal/models"
	"github.com/snapgram/snapgram/pkg/telemetry"
)

// userView is the profile shape returned to the presentation layer
type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Image    string `json:"image,omitempty"`
	Website  string `json:"website,omitempty"`
}

func newUserView(u *models.User) userView {
	return userView{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name.String,
		Bio:      u.Bio.String,
		Gender:   u.Gender.String,
		Image:    u.Image.String,
		Website:  u.Website.String,
	}
}

// postView is the post shape returned to the presentation layer
type postView struct {
	ID        string    `json:"id"`
	Caption   string    `json:"caption,omitempty"`
	FileURL   string    `json:"fileUrl"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newPostView(p *models.Post) postView {
	return postView{
		ID:        p.ID,
		Caption:   p.Caption.String,
		FileURL:   p.FileURL,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
	}
}

func (r *Router) getUser(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.get_user")
	defer span.End()

	user, err := r.users.FindUserByUsername(ctx, c.Param("username"))
	if err != nil {
		r.logger.Error("Failed to load user", zap.String("username", c.Param("username")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}

	c.JSON(http.StatusOK, newUserView(user))
}

func (r *Router) getPost(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.get_post")
	defer span.End()

	post, err := r.posts.FindPost(ctx, c.Param("id"))
	if err != nil {
		r.logger.Error("Failed to load post", zap.String("post_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}

	c.JSON(http.StatusOK, newPostView(post))
}
