package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Post struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex"`
	Content   string    `gorm:"type:text;not null"`
	Excerpt   string    `gorm:"type:varchar(255)"`
	Category  string    `gorm:"type:varchar(100);index"`
	Tags      datatypes.JSON
	Status    string    `gorm:"type:varchar(20);index;default:draft"`
	Featured  bool      `gorm:"default:false"`
	AuthorId  string    `gorm:"type:varchar(255);index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Post) TableName() string {
	return "blog_posts"
}
