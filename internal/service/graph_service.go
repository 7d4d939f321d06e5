package service

import (
	"context"

	"neuranote-be/internal/apperror"
	"neuranote-be/internal/dto"
	"neuranote-be/internal/repository/specification"
	"neuranote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IGraphService interface {
	// BuildGraph returns one node per owned note plus hierarchy and link
	// edges, each tagged with its relation kind for the renderer.
	BuildGraph(ctx context.Context, userId uuid.UUID) (*dto.GraphResponse, error)
}

type graphService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGraphService(uowFactory unitofwork.RepositoryFactory) IGraphService {
	return &graphService{uowFactory: uowFactory}
}

func (s *graphService) BuildGraph(ctx context.Context, userId uuid.UUID) (*dto.GraphResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderByCreatedAsc{},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	graph := &dto.GraphResponse{
		Nodes: make([]dto.GraphNode, 0, len(notes)),
		Edges: make([]dto.GraphEdge, 0),
	}

	for _, note := range notes {
		graph.Nodes = append(graph.Nodes, dto.GraphNode{
			Id:    note.Id,
			Title: note.Title,
		})
		if note.ParentId != nil {
			graph.Edges = append(graph.Edges, dto.GraphEdge{
				Source: *note.ParentId,
				Target: note.Id,
				Kind:   dto.GraphEdgeKindHierarchy,
			})
		}
	}

	links, err := uow.NoteLinkRepository().FindAllByUserId(ctx, userId)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	for _, link := range links {
		graph.Edges = append(graph.Edges, dto.GraphEdge{
			Source: link.SourceNoteId,
			Target: link.TargetNoteId,
			Kind:   dto.GraphEdgeKindLink,
		})
	}

	return graph, nil
}
