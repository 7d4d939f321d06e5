package model

import "github.com/google/uuid"

// NoteTag is the explicit note<->tag association row. Kept as its own
// model so tag replacement is a plain delete+insert, no many2many magic.
type NoteTag struct {
	NoteId uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagId  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
