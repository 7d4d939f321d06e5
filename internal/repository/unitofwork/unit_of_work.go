package unitofwork

import (
	"context"

	"neuranote-be/internal/repository/contract"
)

// UnitOfWork groups repository access under one optional transaction so
// a note mutation and its tag/link side effects commit as a single step.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	NoteTagRepository() contract.NoteTagRepository
	NoteLinkRepository() contract.NoteLinkRepository
}
