package models

import (
	"time"
)

// Like represents a like relationship between a user and a post
type Like struct {
	PostID    string    `gorm:"type:varchar(36);primaryKey;column:post_id"`
	UserID    string    `gorm:"type:varchar(36);primaryKey;column:user_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Post *Post `gorm:"foreignKey:PostID;references:ID"`
	User *User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "likes"
}

// SavedPost represents a bookmark relationship between a user and a post
type SavedPost struct {
	PostID    string    `gorm:"type:varchar(36);primaryKey;column:post_id"`
	UserID    string    `gorm:"type:varchar(36);primaryKey;column:user_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Post *Post `gorm:"foreignKey:PostID;references:ID"`
	User *User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for SavedPost
func (SavedPost) TableName() string {
	return "saved_posts"
}

// Follow represents a follow relationship between two users
type Follow struct {
	FollowerID  string    `gorm:"type:varchar(36);primaryKey;column:follower_id"`
	FollowingID string    `gorm:"type:varchar(36);primaryKey;column:following_id"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Follower  *User `gorm:"foreignKey:FollowerID;references:ID"`
	Following *User `gorm:"foreignKey:FollowingID;references:ID"`
}

// TableName specifies the table name for Follow
func (Follow) TableName() string {
	return "follows"
}

// RelationKind selects which relation table a pair key addresses.
type RelationKind string

const (
	RelationLike   RelationKind = "like"
	RelationSave   RelationKind = "save"
	RelationFollow RelationKind = "follow"
)

// PairKey is the unique key of a relation row. ActorID is the acting user;
// SubjectID is the post being liked/saved, or the user being followed.
type PairKey struct {
	SubjectID string
	ActorID   string
}

// Record builds the gorm record for a relation kind and pair key.
func (k RelationKind) Record(key PairKey, at time.Time) interface{} {
	switch k {
	case RelationLike:
		return &Like{PostID: key.SubjectID, UserID: key.ActorID, CreatedAt: at}
	case RelationSave:
		return &SavedPost{PostID: key.SubjectID, UserID: key.ActorID, CreatedAt: at}
	case RelationFollow:
		return &Follow{FollowerID: key.ActorID, FollowingID: key.SubjectID, CreatedAt: at}
	}
	return nil
}
