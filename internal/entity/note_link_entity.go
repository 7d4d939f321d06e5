package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteLink is a directed edge: the source note's content references the
// target note by title. Stored one-way, queried in both directions.
type NoteLink struct {
	SourceNoteId uuid.UUID
	TargetNoteId uuid.UUID
	UserId       uuid.UUID
	CreatedAt    time.Time
}
