package models

import (
	"time"

	"gorm.io/gorm"
)

// Exercise is a single logged workout entry. The owning user is referenced
// by a copy of their username taken at creation time, not by a foreign key;
// log queries match on this string.
type Exercise struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username    string    `json:"username" gorm:"index;type:varchar(100)"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Date        time.Time `json:"date" gorm:"index"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
