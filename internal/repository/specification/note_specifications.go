package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByParentID filters by the hierarchy parent. A nil parent selects
// root-level notes.
type ByParentID struct {
	ParentID *uuid.UUID
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", s.ParentID)
}

// ByExactTitle matches a note title case-sensitively. Link resolution
// depends on this being exact, not a substring match.
type ByExactTitle struct {
	Title string
}

func (s ByExactTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}

// SearchQuery matches the query as a case-insensitive substring of
// title or content.
type SearchQuery struct {
	Query string
}

func (s SearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
