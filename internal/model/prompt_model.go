package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Prompt struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(100);index"`
	Tags      datatypes.JSON
	Variables datatypes.JSON
	OwnerId   string    `gorm:"type:varchar(255);index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Prompt) TableName() string {
	return "prompts"
}
