package service

import (
	"context"
	"strings"

	"neuranote-be/internal/entity"
	"neuranote-be/internal/repository/contract"
	"neuranote-be/internal/repository/specification"
	"neuranote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// The fakes below keep everything in maps and interpret the
// specification structs directly, so service semantics are testable
// without a database. Begin snapshots the store and Rollback restores
// it, mirroring the transactional contract the services rely on.

type memStore struct {
	notes     map[uuid.UUID]*entity.Note
	noteOrder []uuid.UUID
	tags      map[uuid.UUID]*entity.Tag
	tagOrder  []uuid.UUID
	noteTags  map[uuid.UUID][]uuid.UUID
	links     []entity.NoteLink
	users     map[uuid.UUID]*entity.User
}

func newMemStore() *memStore {
	return &memStore{
		notes:    make(map[uuid.UUID]*entity.Note),
		tags:     make(map[uuid.UUID]*entity.Tag),
		noteTags: make(map[uuid.UUID][]uuid.UUID),
		links:    make([]entity.NoteLink, 0),
		users:    make(map[uuid.UUID]*entity.User),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, n := range s.notes {
		copied := *n
		c.notes[id] = &copied
	}
	c.noteOrder = append([]uuid.UUID(nil), s.noteOrder...)
	for id, t := range s.tags {
		copied := *t
		c.tags[id] = &copied
	}
	c.tagOrder = append([]uuid.UUID(nil), s.tagOrder...)
	for id, tagIds := range s.noteTags {
		c.noteTags[id] = append([]uuid.UUID(nil), tagIds...)
	}
	c.links = append([]entity.NoteLink(nil), s.links...)
	for id, u := range s.users {
		copied := *u
		c.users[id] = &copied
	}
	return c
}

type memUnitOfWork struct {
	store    *memStore
	snapshot *memStore
}

func (u *memUnitOfWork) Begin(ctx context.Context) error {
	u.snapshot = u.store.clone()
	return nil
}

func (u *memUnitOfWork) Commit() error {
	u.snapshot = nil
	return nil
}

func (u *memUnitOfWork) Rollback() error {
	if u.snapshot == nil {
		return nil
	}
	*u.store = *u.snapshot
	u.snapshot = nil
	return nil
}

func (u *memUnitOfWork) UserRepository() contract.UserRepository {
	return &memUserRepo{store: u.store}
}

func (u *memUnitOfWork) NoteRepository() contract.NoteRepository {
	return &memNoteRepo{store: u.store}
}

func (u *memUnitOfWork) TagRepository() contract.TagRepository {
	return &memTagRepo{store: u.store}
}

func (u *memUnitOfWork) NoteTagRepository() contract.NoteTagRepository {
	return &memNoteTagRepo{store: u.store}
}

func (u *memUnitOfWork) NoteLinkRepository() contract.NoteLinkRepository {
	return &memNoteLinkRepo{store: u.store}
}

type memFactory struct {
	store *memStore
}

func newMemFactory() *memFactory {
	return &memFactory{store: newMemStore()}
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUnitOfWork{store: f.store}
}

// note repository

type memNoteRepo struct {
	store *memStore
}

func noteMatches(n *entity.Note, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return n.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if n.Id == id {
				return true
			}
		}
		return false
	case specification.OwnedBy:
		return n.UserId == s.UserID
	case specification.ByParentID:
		if s.ParentID == nil {
			return n.ParentId == nil
		}
		return n.ParentId != nil && *n.ParentId == *s.ParentID
	case specification.ByExactTitle:
		return n.Title == s.Title
	case specification.SearchQuery:
		q := strings.ToLower(s.Query)
		return strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q)
	default:
		// Ordering and pagination are handled by the caller.
		return true
	}
}

func (r *memNoteRepo) filter(specs ...specification.Specification) []*entity.Note {
	limit, offset := -1, 0
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			limit, offset = p.Limit, p.Offset
		}
	}

	matched := make([]*entity.Note, 0)
	for _, id := range r.store.noteOrder {
		n, ok := r.store.notes[id]
		if !ok {
			continue
		}
		all := true
		for _, spec := range specs {
			if !noteMatches(n, spec) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, n)
		}
	}

	if offset > 0 {
		if offset >= len(matched) {
			return []*entity.Note{}
		}
		matched = matched[offset:]
	}
	if limit >= 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched
}

func (r *memNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	copied := *note
	r.store.notes[note.Id] = &copied
	r.store.noteOrder = append(r.store.noteOrder, note.Id)
	return nil
}

func (r *memNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	copied := *note
	r.store.notes[note.Id] = &copied
	return nil
}

func (r *memNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.notes, id)
	return nil
}

func (r *memNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	matched := r.filter(specs...)
	if len(matched) == 0 {
		return nil, nil
	}
	copied := *matched[0]
	return &copied, nil
}

func (r *memNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	matched := r.filter(specs...)
	result := make([]*entity.Note, len(matched))
	for i, n := range matched {
		copied := *n
		result[i] = &copied
	}
	return result, nil
}

func (r *memNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs...))), nil
}

// tag repository

type memTagRepo struct {
	store *memStore
}

func tagMatches(t *entity.Tag, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return t.Id == s.ID
	case specification.ByName:
		return t.Name == s.Name
	case specification.OwnedBy:
		return t.UserId == s.UserID
	default:
		return true
	}
}

func (r *memTagRepo) filter(specs ...specification.Specification) []*entity.Tag {
	matched := make([]*entity.Tag, 0)
	for _, id := range r.store.tagOrder {
		t, ok := r.store.tags[id]
		if !ok {
			continue
		}
		all := true
		for _, spec := range specs {
			if !tagMatches(t, spec) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, t)
		}
	}
	return matched
}

func (r *memTagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	copied := *tag
	r.store.tags[tag.Id] = &copied
	r.store.tagOrder = append(r.store.tagOrder, tag.Id)
	return nil
}

func (r *memTagRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	matched := r.filter(specs...)
	if len(matched) == 0 {
		return nil, nil
	}
	copied := *matched[0]
	return &copied, nil
}

func (r *memTagRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	matched := r.filter(specs...)
	result := make([]*entity.Tag, len(matched))
	for i, t := range matched {
		copied := *t
		result[i] = &copied
	}
	return result, nil
}

// note-tag association repository

type memNoteTagRepo struct {
	store *memStore
}

func (r *memNoteTagRepo) ReplaceForNote(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error {
	r.store.noteTags[noteId] = append([]uuid.UUID(nil), tagIds...)
	return nil
}

func (r *memNoteTagRepo) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	delete(r.store.noteTags, noteId)
	return nil
}

func (r *memNoteTagRepo) FindTagsByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error) {
	tags := make([]*entity.Tag, 0)
	for _, tagId := range r.store.noteTags[noteId] {
		if t, ok := r.store.tags[tagId]; ok {
			copied := *t
			tags = append(tags, &copied)
		}
	}
	return tags, nil
}

// note-link repository

type memNoteLinkRepo struct {
	store *memStore
}

func (r *memNoteLinkRepo) ReplaceOutgoing(ctx context.Context, userId, sourceId uuid.UUID, targetIds []uuid.UUID) error {
	kept := make([]entity.NoteLink, 0, len(r.store.links))
	for _, l := range r.store.links {
		if l.SourceNoteId != sourceId {
			kept = append(kept, l)
		}
	}
	for _, targetId := range targetIds {
		kept = append(kept, entity.NoteLink{
			SourceNoteId: sourceId,
			TargetNoteId: targetId,
			UserId:       userId,
		})
	}
	r.store.links = kept
	return nil
}

func (r *memNoteLinkRepo) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	kept := make([]entity.NoteLink, 0, len(r.store.links))
	for _, l := range r.store.links {
		if l.SourceNoteId != noteId && l.TargetNoteId != noteId {
			kept = append(kept, l)
		}
	}
	r.store.links = kept
	return nil
}

func (r *memNoteLinkRepo) FindTargetIds(ctx context.Context, userId, sourceId uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	for _, l := range r.store.links {
		if l.UserId == userId && l.SourceNoteId == sourceId {
			ids = append(ids, l.TargetNoteId)
		}
	}
	return ids, nil
}

func (r *memNoteLinkRepo) FindSourceIds(ctx context.Context, userId, targetId uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	for _, l := range r.store.links {
		if l.UserId == userId && l.TargetNoteId == targetId {
			ids = append(ids, l.SourceNoteId)
		}
	}
	return ids, nil
}

func (r *memNoteLinkRepo) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.NoteLink, error) {
	links := make([]*entity.NoteLink, 0)
	for _, l := range r.store.links {
		if l.UserId == userId {
			copied := l
			links = append(links, &copied)
		}
	}
	return links, nil
}

// user repository

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	copied := *user
	r.store.users[user.Id] = &copied
	return nil
}

func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		all := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByID); ok && u.Id != s.ID {
				all = false
				break
			}
		}
		if all {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}

// nopLogger keeps service wiring quiet in tests.

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// newTestServices wires the full service stack over one shared store.
func newTestServices() (*memFactory, INoteService, ITagService, ILinkService, IGraphService) {
	factory := newMemFactory()
	tagSvc := NewTagService(factory)
	linkSvc := NewLinkService(nopLogger{})
	noteSvc := NewNoteService(factory, tagSvc, linkSvc, nopLogger{})
	graphSvc := NewGraphService(factory)
	return factory, noteSvc, tagSvc, linkSvc, graphSvc
}
