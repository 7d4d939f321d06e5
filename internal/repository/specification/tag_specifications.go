package specification

import "gorm.io/gorm"

// ByName filters tags by exact name within whatever owner scope is
// already applied.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
