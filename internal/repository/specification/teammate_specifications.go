package specification

import (
	"encoding/json"

	"gorm.io/gorm"
)

// LookingForTeam keeps only directory entries open to joining a team.
type LookingForTeam struct{}

func (s LookingForTeam) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("looking_for_team = ?", true)
}

// HasSkill filters by exact skill value (case-sensitive, like the directory UI).
type HasSkill struct {
	Skill string
}

func (s HasSkill) Apply(db *gorm.DB) *gorm.DB {
	// jsonb array containment; skills are stored as a JSON array of strings
	needle, _ := json.Marshal([]string{s.Skill})
	return db.Where("skills @> ?", string(needle))
}

// TeammateSearch matches the search term against name or bio, case-insensitive.
type TeammateSearch struct {
	Term string
}

func (s TeammateSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("name ILIKE ? OR bio ILIKE ?", pattern, pattern)
}
