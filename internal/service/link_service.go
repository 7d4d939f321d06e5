package service

import (
	"context"

	"neuranote-be/internal/apperror"
	"neuranote-be/internal/entity"
	"neuranote-be/internal/pkg/logger"
	"neuranote-be/internal/repository/specification"
	"neuranote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ILinkService interface {
	// Resolve declaratively replaces the outgoing edge set of sourceId
	// with the notes matched by referenceTitles. Titles that match no
	// note are dropped, not errored: a broken [[link]] is not a failure.
	// Runs against the caller's unit of work so edges commit with the
	// content change that produced them.
	Resolve(ctx context.Context, uow unitofwork.UnitOfWork, userId, sourceId uuid.UUID, referenceTitles []string) error
	LinkedTo(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) ([]*entity.Note, error)
	LinkedFrom(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) ([]*entity.Note, error)
}

type linkService struct {
	log logger.ILogger
}

func NewLinkService(log logger.ILogger) ILinkService {
	return &linkService{log: log}
}

func (s *linkService) Resolve(ctx context.Context, uow unitofwork.UnitOfWork, userId, sourceId uuid.UUID, referenceTitles []string) error {
	targetIds := make([]uuid.UUID, 0, len(referenceTitles))
	seenTitles := make(map[string]bool)
	seenTargets := make(map[uuid.UUID]bool)
	dropped := 0

	for _, title := range referenceTitles {
		if seenTitles[title] {
			continue
		}
		seenTitles[title] = true

		// Exact, case-sensitive title match within the owner's notes.
		target, err := uow.NoteRepository().FindOne(ctx,
			specification.ByExactTitle{Title: title},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return apperror.Storage(err)
		}
		if target == nil {
			dropped++
			continue
		}
		if seenTargets[target.Id] {
			continue
		}
		seenTargets[target.Id] = true
		targetIds = append(targetIds, target.Id)
	}

	if dropped > 0 {
		s.log.Debug("link_resolver", "dropped unresolved references", map[string]interface{}{
			"source_note_id": sourceId,
			"dropped":        dropped,
		})
	}

	if err := uow.NoteLinkRepository().ReplaceOutgoing(ctx, userId, sourceId, targetIds); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (s *linkService) LinkedTo(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) ([]*entity.Note, error) {
	ids, err := uow.NoteLinkRepository().FindTargetIds(ctx, userId, noteId)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return s.fetchNotes(ctx, uow, userId, ids)
}

func (s *linkService) LinkedFrom(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) ([]*entity.Note, error) {
	ids, err := uow.NoteLinkRepository().FindSourceIds(ctx, userId, noteId)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return s.fetchNotes(ctx, uow, userId, ids)
}

func (s *linkService) fetchNotes(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, ids []uuid.UUID) ([]*entity.Note, error) {
	if len(ids) == 0 {
		return []*entity.Note{}, nil
	}
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return notes, nil
}
