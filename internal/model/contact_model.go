package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Company   string    `gorm:"type:varchar(255)"`
	Service   string    `gorm:"type:varchar(100)"`
	Message   string    `gorm:"type:text;not null"`
	Handled   bool      `gorm:"default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
