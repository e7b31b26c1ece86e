package models

import (
	"database/sql"
	"time"
)

// Post represents a published post
type Post struct {
	ID        string         `gorm:"type:varchar(36);primaryKey;column:id"`
	Caption   sql.NullString `gorm:"type:varchar(2200);column:caption"`
	FileURL   string         `gorm:"type:varchar(1024);not null;column:file_url"`
	UserID    string         `gorm:"type:varchar(36);not null;index;column:user_id"`
	CreatedAt time.Time      `gorm:"not null;column:created_at"`
	UpdatedAt time.Time      `gorm:"not null;column:updated_at"`

	// Relationships
	User     *User       `gorm:"foreignKey:UserID;references:ID"`
	Comments []Comment   `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Likes    []Like      `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	SavedBy  []SavedPost `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// Comment represents a comment on a post
type Comment struct {
	ID        string    `gorm:"type:varchar(36);primaryKey;column:id"`
	Body      string    `gorm:"type:varchar(2200);not null;column:body"`
	PostID    string    `gorm:"type:varchar(36);not null;index;column:post_id"`
	UserID    string    `gorm:"type:varchar(36);not null;column:user_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Post *Post `gorm:"foreignKey:PostID;references:ID"`
	User *User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
