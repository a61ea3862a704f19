package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel menampung access token yang sudah di-logout
// supaya tidak bisa dipakai lagi sampai kedaluwarsa.
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID `gorm:"column:token_blacklist_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"token_blacklist_id"`
	Token            string    `gorm:"column:token;type:text;not null;index" json:"token"`
	ExpiresAt        time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName sets the name of the table
func (TokenBlacklistModel) TableName() string {
	return "token_blacklists"
}
