package service

import (
	"context"
	"time"

	"neuranote-be/internal/apperror"
	"neuranote-be/internal/dto"
	"neuranote-be/internal/entity"
	"neuranote-be/internal/repository/specification"
	"neuranote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITagService interface {
	// Resolve maps tag names to tag rows, creating missing ones. It runs
	// against the caller's unit of work so lazily created tags commit
	// together with the note mutation that referenced them.
	Resolve(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, names []string) ([]*entity.Tag, error)
	ListTags(ctx context.Context, userId uuid.UUID) ([]*dto.TagResponse, error)
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{uowFactory: uowFactory}
}

func (s *tagService) Resolve(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, names []string) ([]*entity.Tag, error) {
	tags := make([]*entity.Tag, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := uow.TagRepository().FindOne(ctx,
			specification.ByName{Name: name},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		if tag == nil {
			tag = &entity.Tag{
				Id:        uuid.New(),
				Name:      name,
				UserId:    userId,
				CreatedAt: time.Now(),
			}
			if err := uow.TagRepository().Create(ctx, tag); err != nil {
				return nil, apperror.Storage(err)
			}
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func (s *tagService) ListTags(ctx context.Context, userId uuid.UUID) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderByCreatedAsc{},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	result := make([]*dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		result = append(result, &dto.TagResponse{
			Id:        tag.Id,
			Name:      tag.Name,
			Color:     tag.Color,
			CreatedAt: tag.CreatedAt,
		})
	}
	return result, nil
}
