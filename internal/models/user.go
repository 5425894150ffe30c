package models

import "time"

// User is the persisted auth user record. Handlers convert it to a safe
// view; PasswordHash is never serialized.
type User struct {
	ID           string    `gorm:"primaryKey;type:text"`
	Email        string    `gorm:"uniqueIndex;size:320;not null"`
	Name         string    `gorm:"size:120"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
