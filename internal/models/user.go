package models

import (
	"database/sql"
	"time"
)

// User represents an application user
type User struct {
	ID        string         `gorm:"type:varchar(36);primaryKey;column:id"`
	Username  string         `gorm:"type:varchar(30);not null;uniqueIndex:users_username_ux;column:username"`
	Name      sql.NullString `gorm:"type:varchar(50);column:name"`
	Bio       sql.NullString `gorm:"type:varchar(160);column:bio"`
	Gender    sql.NullString `gorm:"type:varchar(20);column:gender"`
	Image     sql.NullString `gorm:"type:varchar(1024);column:image"`
	Website   sql.NullString `gorm:"type:varchar(100);column:website"`
	CreatedAt time.Time      `gorm:"not null;column:created_at"`
	UpdatedAt time.Time      `gorm:"not null;column:updated_at"`

	// Relationships
	Posts    []Post    `gorm:"foreignKey:UserID;references:ID"`
	Comments []Comment `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
