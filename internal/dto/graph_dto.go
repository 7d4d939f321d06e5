package dto

import "github.com/google/uuid"

const (
	GraphEdgeKindHierarchy = "hierarchy"
	GraphEdgeKindLink      = "link"
)

type GraphNode struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// GraphEdge carries its relation kind so a renderer can style
// parent/child edges differently from content links.
type GraphEdge struct {
	Source uuid.UUID `json:"source"`
	Target uuid.UUID `json:"target"`
	Kind   string    `json:"kind"`
}

type GraphResponse struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
