package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HolidayModel struct {
	HolidayID          uuid.UUID      `gorm:"column:holiday_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"holiday_id"`
	HolidayDate        datatypes.Date `gorm:"column:holiday_date;not null;index" json:"holiday_date"`
	HolidayDescription string         `gorm:"column:holiday_description;type:text;not null" json:"holiday_description"`
	HolidayCreatedAt   time.Time      `gorm:"column:holiday_created_at;autoCreateTime" json:"holiday_created_at"`
}

// TableName sets the name of the table
func (HolidayModel) TableName() string {
	return "holidays"
}
