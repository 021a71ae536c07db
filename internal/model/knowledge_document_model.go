package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type KnowledgeDocument struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex"`
	Content   string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(100);index"`
	Tags      datatypes.JSON
	Source    string    `gorm:"type:varchar(500)"`
	OwnerId   string    `gorm:"type:varchar(255);index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KnowledgeDocument) TableName() string {
	return "knowledge_base"
}
