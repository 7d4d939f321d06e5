package model

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_name_user"`
	Color     *string   `gorm:"type:varchar(7)"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_name_user;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}
