package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is only the ownership anchor for notes and tags. Credential and
// session handling live outside this service.
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	CreatedAt time.Time
}
