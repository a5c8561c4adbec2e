package specification

import "gorm.io/gorm"

// ByHackathonType filters the catalog by "online"/"offline".
type ByHackathonType struct {
	Type string
}

func (s ByHackathonType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// HackathonSearch matches the search term against name or description,
// case-insensitive.
type HackathonSearch struct {
	Term string
}

func (s HackathonSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
}
