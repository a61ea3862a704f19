package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID           uuid.UUID `gorm:"column:admin_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"admin_id"`
	AdminName         string    `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminUsername     string    `gorm:"column:admin_username;type:varchar(50);not null;unique" json:"admin_username"`
	AdminPassword     string    `gorm:"column:admin_password;type:text;not null" json:"-"`
	AdminProfilePhoto *string   `gorm:"column:admin_profile_photo;type:text" json:"admin_profile_photo"` // Nullable
	AdminCreatedAt    time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt    time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

// TableName sets the name of the table
func (AdminModel) TableName() string {
	return "admins"
}
