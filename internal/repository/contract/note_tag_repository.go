package contract

import (
	"context"

	"neuranote-be/internal/entity"

	"github.com/google/uuid"
)

// NoteTagRepository manages the note<->tag association rows. Replace is
// declarative: the note's tag set becomes exactly tagIds.
type NoteTagRepository interface {
	ReplaceForNote(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindTagsByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error)
}
