package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Workflow stores its ordered steps as one JSON column. Updates replace the
// column wholesale; there is no per-step patching.
type Workflow struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Steps       datatypes.JSON
	Tags        datatypes.JSON
	OwnerId     string    `gorm:"type:varchar(255);index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Workflow) TableName() string {
	return "workflows"
}
