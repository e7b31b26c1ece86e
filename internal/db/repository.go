package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/snapgram/snapgram/internal/models"
)

// ErrDuplicate is returned when an insert hits an existing relation row.
var ErrDuplicate = errors.New("duplicate relation")

// StorageError wraps a store failure so callers never see driver codes.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed", e.Op)
}

// Unwrap returns the underlying error for logging
func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UserRepository provides user-related database operations
type UserRepository struct {
	*Repository
}

// NewUserRepository creates a new user repository
func NewUserRepository(repo *Repository) *UserRepository {
	return &UserRepository{Repository: repo}
}

// FindUser retrieves a user by ID, returning nil when absent
func (r *UserRepository) FindUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("users.find", err)
	}
	return &user, nil
}

// FindUserByUsername retrieves a user by username, returning nil when absent
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("users.find_by_username", err)
	}
	return &user, nil
}

// UpdateUser updates a user
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return storageErr("users.update", err)
	}
	return nil
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// FindPost retrieves a post by ID, returning nil when absent
func (r *PostRepository) FindPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("posts.find", err)
	}
	return &post, nil
}

// CreatePost creates a new post
func (r *PostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return storageErr("posts.create", err)
	}
	return nil
}

// UpdatePost updates a post
func (r *PostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return storageErr("posts.update", err)
	}
	return nil
}

// DeletePost deletes a post together with its likes, bookmarks and comments.
// The cascade runs in one transaction so a failure leaves no partial state.
func (r *PostRepository) DeletePost(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.SavedPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Post{}).Error
	})
	if err != nil {
		return storageErr("posts.delete", err)
	}
	return nil
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// FindComment retrieves a comment by ID, returning nil when absent
func (r *CommentRepository) FindComment(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("comments.find", err)
	}
	return &comment, nil
}

// CreateComment creates a new comment
func (r *CommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return storageErr("comments.create", err)
	}
	return nil
}

// DeleteComment deletes a comment by ID
func (r *CommentRepository) DeleteComment(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return storageErr("comments.delete", err)
	}
	return nil
}

// RelationRepository provides pair-keyed relation operations backing the
// like, bookmark and follow toggles. Uniqueness is the composite primary
// key of each relation table.
type RelationRepository struct {
	*Repository
}

// NewRelationRepository creates a new relation repository
func NewRelationRepository(repo *Repository) *RelationRepository {
	return &RelationRepository{Repository: repo}
}

func relationQuery(tx *gorm.DB, kind models.RelationKind, key models.PairKey) *gorm.DB {
	switch kind {
	case models.RelationFollow:
		return tx.Where("follower_id = ? AND following_id = ?", key.ActorID, key.SubjectID)
	default:
		return tx.Where("post_id = ? AND user_id = ?", key.SubjectID, key.ActorID)
	}
}

func relationModel(kind models.RelationKind) interface{} {
	switch kind {
	case models.RelationLike:
		return &models.Like{}
	case models.RelationSave:
		return &models.SavedPost{}
	case models.RelationFollow:
		return &models.Follow{}
	}
	return nil
}

// FindRelation reports whether a relation row exists for the pair key
func (r *RelationRepository) FindRelation(ctx context.Context, kind models.RelationKind, key models.PairKey) (bool, error) {
	var count int64
	q := relationQuery(r.db.WithContext(ctx).Model(relationModel(kind)), kind, key)
	if err := q.Count(&count).Error; err != nil {
		return false, storageErr("relations.find", err)
	}
	return count > 0, nil
}

// CreateRelation inserts a relation row for the pair key. A concurrent
// insert that already won the race surfaces as ErrDuplicate.
func (r *RelationRepository) CreateRelation(ctx context.Context, kind models.RelationKind, key models.PairKey) error {
	record := kind.Record(key, time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return storageErr("relations.create", err)
	}
	return nil
}

// DeleteRelation removes the relation row for the pair key
func (r *RelationRepository) DeleteRelation(ctx context.Context, kind models.RelationKind, key models.PairKey) error {
	q := relationQuery(r.db.WithContext(ctx), kind, key)
	if err := q.Delete(relationModel(kind)).Error; err != nil {
		return storageErr("relations.delete", err)
	}
	return nil
}
