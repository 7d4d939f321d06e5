package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteLink struct {
	SourceNoteId uuid.UUID `gorm:"type:uuid;primaryKey"`
	TargetNoteId uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (NoteLink) TableName() string {
	return "note_links"
}
