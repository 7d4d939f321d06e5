package dto

import (
	"time"

	"github.com/google/uuid"
)

type TagResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
