package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StaffPermissionModel struct {
	PermissionID          uuid.UUID      `gorm:"column:permission_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"permission_id"`
	PermissionTendikID    uuid.UUID      `gorm:"column:permission_tendik_id;type:uuid;not null;index" json:"permission_tendik_id"`
	PermissionDate        datatypes.Date `gorm:"column:permission_date;not null" json:"permission_date"`
	PermissionType        string         `gorm:"column:permission_type;type:varchar(50);not null" json:"permission_type"`
	PermissionDescription string         `gorm:"column:permission_description;type:text;not null" json:"permission_description"`
	PermissionApprovedBy  uuid.UUID      `gorm:"column:permission_approved_by;type:uuid;not null" json:"permission_approved_by"`
	PermissionCreatedAt   time.Time      `gorm:"column:permission_created_at;autoCreateTime" json:"permission_created_at"`
}

// TableName sets the name of the table
func (StaffPermissionModel) TableName() string {
	return "staff_permissions"
}
