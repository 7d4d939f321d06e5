package service

import (
	"context"
	"strings"
	"time"

	"neuranote-be/internal/apperror"
	"neuranote-be/internal/dto"
	"neuranote-be/internal/entity"
	"neuranote-be/internal/pkg/logger"
	"neuranote-be/internal/repository/specification"
	"neuranote-be/internal/repository/unitofwork"
	"neuranote-be/pkg/wikilink"

	"github.com/google/uuid"
)

const (
	maxListLimit       = 100
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Move(ctx context.Context, userId uuid.UUID, req *dto.MoveNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, parentId *uuid.UUID, skip, limit int) ([]*dto.ListNoteItem, error)
	Search(ctx context.Context, userId uuid.UUID, query string, limit int) ([]*dto.ListNoteItem, error)
}

type noteService struct {
	uowFactory  unitofwork.RepositoryFactory
	tagService  ITagService
	linkService ILinkService
	log         logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	tagService ITagService,
	linkService ILinkService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:  uowFactory,
		tagService:  tagService,
		linkService: linkService,
		log:         log,
	}
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		UserId:    userId,
		IsPublic:  req.IsPublic,
		CreatedAt: time.Now(),
	}

	if req.ParentId != nil {
		if err := s.validateParent(ctx, uow, userId, note.Id, *req.ParentId); err != nil {
			return nil, err
		}
		note.ParentId = req.ParentId
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err)
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.Storage(err)
	}

	if len(req.TagNames) > 0 {
		if err := s.replaceTags(ctx, uow, userId, note.Id, req.TagNames); err != nil {
			return nil, err
		}
	}

	refs := wikilink.ExtractReferences(note.Content)
	if err := s.linkService.Resolve(ctx, uow, userId, note.Id, refs); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err)
	}

	return s.buildNoteResponse(ctx, uow, userId, &note)
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	return s.buildNoteResponse(ctx, uow, userId, note)
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	// Sparse update: only supplied fields change.
	if req.ParentId != nil {
		if err := s.validateParent(ctx, uow, userId, note.Id, *req.ParentId); err != nil {
			return nil, err
		}
		note.ParentId = req.ParentId
	}
	if req.Title != nil {
		note.Title = *req.Title
	}
	contentChanged := req.Content != nil
	if contentChanged {
		note.Content = *req.Content
	}
	if req.IsPublic != nil {
		note.IsPublic = *req.IsPublic
	}

	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err)
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperror.Storage(err)
	}

	if req.TagNames != nil {
		// Present means replace, even when empty.
		if err := s.replaceTags(ctx, uow, userId, note.Id, *req.TagNames); err != nil {
			return nil, err
		}
	}

	if contentChanged {
		refs := wikilink.ExtractReferences(note.Content)
		if err := s.linkService.Resolve(ctx, uow, userId, note.Id, refs); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err)
	}

	return s.buildNoteResponse(ctx, uow, userId, note)
}

func (s *noteService) Move(ctx context.Context, userId uuid.UUID, req *dto.MoveNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.ParentId != nil {
		if err := s.validateParent(ctx, uow, userId, note.Id, *req.ParentId); err != nil {
			return nil, err
		}
	}
	note.ParentId = req.ParentId

	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperror.Storage(err)
	}

	return s.buildNoteResponse(ctx, uow, userId, note)
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return apperror.Storage(err)
	}
	defer uow.Rollback()

	// Children move to root instead of being cascaded away.
	children, err := uow.NoteRepository().FindAll(ctx,
		specification.ByParentID{ParentID: &note.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return apperror.Storage(err)
	}
	for _, child := range children {
		child.ParentId = nil
		if err := uow.NoteRepository().Update(ctx, child); err != nil {
			return apperror.Storage(err)
		}
	}

	if err := uow.NoteTagRepository().DeleteByNoteId(ctx, note.Id); err != nil {
		return apperror.Storage(err)
	}
	if err := uow.NoteLinkRepository().DeleteByNoteId(ctx, note.Id); err != nil {
		return apperror.Storage(err)
	}
	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return apperror.Storage(err)
	}

	if err := uow.Commit(); err != nil {
		return apperror.Storage(err)
	}

	s.log.Info("note_store", "note deleted", map[string]interface{}{
		"note_id":    note.Id,
		"reparented": len(children),
	})
	return nil
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, parentId *uuid.UUID, skip, limit int) ([]*dto.ListNoteItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	// parentId nil selects root notes, not all notes.
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByParentID{ParentID: parentId},
		specification.OrderByCreatedAsc{},
		specification.Pagination{Limit: limit, Offset: skip},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	return toListItems(notes), nil
}

func (s *noteService) Search(ctx context.Context, userId uuid.UUID, query string, limit int) ([]*dto.ListNoteItem, error) {
	if strings.TrimSpace(query) == "" {
		return []*dto.ListNoteItem{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.SearchQuery{Query: query},
		specification.OrderByCreatedAsc{},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	return toListItems(notes), nil
}

// findOwnedNote hides the difference between "does not exist" and
// "owned by someone else" behind one not-found error.
func (s *noteService) findOwnedNote(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if note == nil {
		return nil, apperror.NotFound("note not found")
	}
	return note, nil
}

// validateParent checks that parentId is an owned note and that making
// it the parent of noteId closes no cycle. The ancestor walk is bounded
// by the owner's note count and keeps a visited set, so it terminates
// even on a corrupted parent chain.
func (s *noteService) validateParent(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId, parentId uuid.UUID) error {
	parent, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: parentId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return apperror.Storage(err)
	}
	if parent == nil {
		return apperror.Validation("parent note not found")
	}

	bound, err := uow.NoteRepository().Count(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return apperror.Storage(err)
	}

	visited := make(map[uuid.UUID]bool)
	current := parent
	for steps := int64(0); steps <= bound; steps++ {
		if current.Id == noteId {
			return apperror.Validation("parent assignment would create a cycle")
		}
		if current.ParentId == nil {
			return nil
		}
		if visited[current.Id] {
			break
		}
		visited[current.Id] = true

		next, err := uow.NoteRepository().FindOne(ctx,
			specification.ByID{ID: *current.ParentId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return apperror.Storage(err)
		}
		if next == nil {
			return nil
		}
		current = next
	}

	// Walk exhausted its bound: the stored chain already loops.
	return apperror.Validation("parent chain is cyclic")
}

func (s *noteService) replaceTags(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID, names []string) error {
	tags, err := s.tagService.Resolve(ctx, uow, userId, names)
	if err != nil {
		return err
	}
	tagIds := make([]uuid.UUID, 0, len(tags))
	for _, tag := range tags {
		tagIds = append(tagIds, tag.Id)
	}
	if err := uow.NoteTagRepository().ReplaceForNote(ctx, noteId, tagIds); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

// buildNoteResponse assembles the full note view: tags, both link
// directions and direct children, each fetched explicitly.
func (s *noteService) buildNoteResponse(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, note *entity.Note) (*dto.NoteResponse, error) {
	tags, err := uow.NoteTagRepository().FindTagsByNoteId(ctx, note.Id)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	linkedTo, err := s.linkService.LinkedTo(ctx, uow, userId, note.Id)
	if err != nil {
		return nil, err
	}
	linkedFrom, err := s.linkService.LinkedFrom(ctx, uow, userId, note.Id)
	if err != nil {
		return nil, err
	}

	children, err := uow.NoteRepository().FindAll(ctx,
		specification.ByParentID{ParentID: &note.Id},
		specification.OwnedBy{UserID: userId},
		specification.OrderByCreatedAsc{},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	res := &dto.NoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		Content:    note.Content,
		ParentId:   note.ParentId,
		IsPublic:   note.IsPublic,
		Tags:       make([]dto.TagResponse, 0, len(tags)),
		LinkedTo:   toNoteRefs(linkedTo),
		LinkedFrom: toNoteRefs(linkedFrom),
		Children:   toNoteRefs(children),
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
	for _, tag := range tags {
		res.Tags = append(res.Tags, dto.TagResponse{
			Id:        tag.Id,
			Name:      tag.Name,
			Color:     tag.Color,
			CreatedAt: tag.CreatedAt,
		})
	}
	return res, nil
}

func toNoteRefs(notes []*entity.Note) []dto.NoteRef {
	refs := make([]dto.NoteRef, 0, len(notes))
	for _, n := range notes {
		refs = append(refs, dto.NoteRef{Id: n.Id, Title: n.Title})
	}
	return refs
}

func toListItems(notes []*entity.Note) []*dto.ListNoteItem {
	items := make([]*dto.ListNoteItem, 0, len(notes))
	for _, n := range notes {
		items = append(items, &dto.ListNoteItem{
			Id:        n.Id,
			Title:     n.Title,
			Content:   n.Content,
			ParentId:  n.ParentId,
			IsPublic:  n.IsPublic,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}
	return items
}
