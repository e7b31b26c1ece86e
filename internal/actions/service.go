package actions

import (
	"context"

	"go.uber.org/zap"

	"github.com/snapgram/snapgram/internal/models"
)

// ScopeFeed is the view scope every successful mutation invalidates; entity
// scopes narrow the blast radius for entity-local reads.
const ScopeFeed = "feed"

// RedirectFeed is the redirect signal returned after post create and update
const RedirectFeed = "/dashboard"

func scopePost(id string) string { return "post:" + id }

func scopeProfile(id string) string { return "profile:" + id }

// UserStore is the user slice of the persistence gateway
type UserStore interface {
	FindUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// PostStore is the post slice of the persistence gateway. DeletePost cascades
// the post's likes, bookmarks and comments in one atomic unit.
type PostStore interface {
	FindPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
}

// CommentStore is the comment slice of the persistence gateway
type CommentStore interface {
	FindComment(ctx context.Context, id string) (*models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, id string) error
}

// RelationStore holds the pair-keyed relation rows behind the three toggles.
// CreateRelation reports a lost insert race as db.ErrDuplicate.
type RelationStore interface {
	FindRelation(ctx context.Context, kind models.RelationKind, key models.PairKey) (bool, error)
	CreateRelation(ctx context.Context, kind models.RelationKind, key models.PairKey) error
	DeleteRelation(ctx context.Context, kind models.RelationKind, key models.PairKey) error
}

// ViewInvalidator marks named view scopes stale after a mutation
type ViewInvalidator interface {
	Invalidate(ctx context.Context, scopes ...string)
}

// Service is the action orchestrator: one method per use case, each resolving
// identity, validating input, checking references and ownership, mutating
// through the gateway and invalidating the affected views.
type Service struct {
	users     UserStore
	posts     PostStore
	comments  CommentStore
	relations RelationStore
	views     ViewInvalidator
	validator *Validator
	logger    *zap.Logger
}

// NewService creates a new action service
func NewService(users UserStore, posts PostStore, comments CommentStore, relations RelationStore, views ViewInvalidator, logger *zap.Logger) *Service {
	return &Service{
		users:     users,
		posts:     posts,
		comments:  comments,
		relations: relations,
		views:     views,
		validator: NewValidator(),
		logger:    logger,
	}
}
