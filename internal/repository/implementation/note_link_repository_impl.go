package implementation

import (
	"context"

	"neuranote-be/internal/entity"
	"neuranote-be/internal/model"
	"neuranote-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteLinkRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteLinkRepository(db *gorm.DB) contract.NoteLinkRepository {
	return &NoteLinkRepositoryImpl{db: db}
}

func (r *NoteLinkRepositoryImpl) ReplaceOutgoing(ctx context.Context, userId, sourceId uuid.UUID, targetIds []uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("source_note_id = ?", sourceId).
		Delete(&model.NoteLink{}).Error
	if err != nil {
		return err
	}
	if len(targetIds) == 0 {
		return nil
	}
	rows := make([]model.NoteLink, 0, len(targetIds))
	for _, targetId := range targetIds {
		rows = append(rows, model.NoteLink{
			SourceNoteId: sourceId,
			TargetNoteId: targetId,
			UserId:       userId,
		})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *NoteLinkRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("source_note_id = ? OR target_note_id = ?", noteId, noteId).
		Delete(&model.NoteLink{}).Error
}

func (r *NoteLinkRepositoryImpl) FindTargetIds(ctx context.Context, userId, sourceId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.NoteLink{}).
		Where("user_id = ? AND source_note_id = ?", userId, sourceId).
		Pluck("target_note_id", &ids).Error
	return ids, err
}

func (r *NoteLinkRepositoryImpl) FindSourceIds(ctx context.Context, userId, targetId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.NoteLink{}).
		Where("user_id = ? AND target_note_id = ?", userId, targetId).
		Pluck("source_note_id", &ids).Error
	return ids, err
}

func (r *NoteLinkRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.NoteLink, error) {
	var models []*model.NoteLink
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	links := make([]*entity.NoteLink, len(models))
	for i, m := range models {
		links[i] = &entity.NoteLink{
			SourceNoteId: m.SourceNoteId,
			TargetNoteId: m.TargetNoteId,
			UserId:       m.UserId,
			CreatedAt:    m.CreatedAt,
		}
	}
	return links, nil
}
