package models

import "gorm.io/gorm"

// User represents an account that exercises are logged against.
// Usernames carry no uniqueness constraint: two users may share a name.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username   string `json:"username" gorm:"index;type:varchar(100)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
