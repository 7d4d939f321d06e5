package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is scoped to its owner: (Name, UserId) is unique, two users may
// own same-named tags independently.
type Tag struct {
	Id        uuid.UUID
	Name      string
	Color     *string
	UserId    uuid.UUID
	CreatedAt time.Time
}
