package model

import (
	"time"

	"github.com/google/uuid"
)

type TendikModel struct {
	TendikID           uuid.UUID `gorm:"column:tendik_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"tendik_id"`
	TendikName         string    `gorm:"column:tendik_name;type:varchar(100);not null" json:"tendik_name"`
	TendikUsername     string    `gorm:"column:tendik_username;type:varchar(50);not null;unique" json:"tendik_username"`
	TendikPassword     string    `gorm:"column:tendik_password;type:text;not null" json:"-"`
	TendikPosition     string    `gorm:"column:tendik_position;type:varchar(30);not null" json:"tendik_position"`
	TendikProfilePhoto *string   `gorm:"column:tendik_profile_photo;type:text" json:"tendik_profile_photo"` // Nullable
	TendikCreatedAt    time.Time `gorm:"column:tendik_created_at;autoCreateTime" json:"tendik_created_at"`
	TendikUpdatedAt    time.Time `gorm:"column:tendik_updated_at;autoUpdateTime" json:"tendik_updated_at"`
}

// TableName sets the name of the table
func (TendikModel) TableName() string {
	return "tendiks"
}
