package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title    string     `json:"title" validate:"required"`
	Content  string     `json:"content"`
	ParentId *uuid.UUID `json:"parent_id"`
	IsPublic bool       `json:"is_public"`
	TagNames []string   `json:"tag_names"`
}

// UpdateNoteRequest is a sparse update: nil pointer fields keep their
// previous value. TagNames pointing at an empty slice clears the tag
// set, which is different from leaving it nil.
type UpdateNoteRequest struct {
	Id       uuid.UUID  `json:"-"`
	Title    *string    `json:"title"`
	Content  *string    `json:"content"`
	ParentId *uuid.UUID `json:"parent_id"`
	IsPublic *bool      `json:"is_public"`
	TagNames *[]string  `json:"tag_names"`
}

// MoveNoteRequest reparents a note. A nil parent moves it to root.
type MoveNoteRequest struct {
	Id       uuid.UUID  `json:"-"`
	ParentId *uuid.UUID `json:"parent_id"`
}

type NoteRef struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type NoteResponse struct {
	Id         uuid.UUID     `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	ParentId   *uuid.UUID    `json:"parent_id"`
	IsPublic   bool          `json:"is_public"`
	Tags       []TagResponse `json:"tags"`
	LinkedTo   []NoteRef     `json:"linked_to"`
	LinkedFrom []NoteRef     `json:"linked_from"`
	Children   []NoteRef     `json:"children"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  *time.Time    `json:"updated_at"`
}

type ListNoteItem struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ParentId  *uuid.UUID `json:"parent_id"`
	IsPublic  bool       `json:"is_public"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
