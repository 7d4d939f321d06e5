package implementation

import (
	"context"

	"neuranote-be/internal/entity"
	"neuranote-be/internal/mapper"
	"neuranote-be/internal/model"
	"neuranote-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteTagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewNoteTagRepository(db *gorm.DB) contract.NoteTagRepository {
	return &NoteTagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *NoteTagRepositoryImpl) ReplaceForNote(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error {
	if err := r.DeleteByNoteId(ctx, noteId); err != nil {
		return err
	}
	if len(tagIds) == 0 {
		return nil
	}
	rows := make([]model.NoteTag, 0, len(tagIds))
	for _, tagId := range tagIds {
		rows = append(rows, model.NoteTag{NoteId: noteId, TagId: tagId})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *NoteTagRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteTag{}).Error
}

func (r *NoteTagRepositoryImpl) FindTagsByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error) {
	var models []*model.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN note_tags ON note_tags.tag_id = tags.id").
		Where("note_tags.note_id = ?", noteId).
		Order("tags.name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
