package contract

import (
	"context"

	"neuranote-be/internal/entity"

	"github.com/google/uuid"
)

// NoteLinkRepository manages directed link edges between notes.
type NoteLinkRepository interface {
	// ReplaceOutgoing makes targetIds the complete outgoing edge set of
	// sourceId. Edges pointing at sourceId are untouched.
	ReplaceOutgoing(ctx context.Context, userId, sourceId uuid.UUID, targetIds []uuid.UUID) error
	// DeleteByNoteId removes every edge touching the note, both directions.
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindTargetIds(ctx context.Context, userId, sourceId uuid.UUID) ([]uuid.UUID, error)
	FindSourceIds(ctx context.Context, userId, targetId uuid.UUID) ([]uuid.UUID, error)
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.NoteLink, error)
}
