package mapper

import (
	"encoding/json"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/model"

	"gorm.io/datatypes"
)

type TeammateMapper struct{}

func NewTeammateMapper() *TeammateMapper {
	return &TeammateMapper{}
}

func (m *TeammateMapper) ToEntity(t *model.Teammate) *entity.Teammate {
	if t == nil {
		return nil
	}
	var skills []string
	if len(t.Skills) > 0 {
		// Malformed rows degrade to an empty skill list rather than failing the read.
		_ = json.Unmarshal(t.Skills, &skills)
	}
	return &entity.Teammate{
		Id:             t.Id,
		Name:           t.Name,
		Bio:            t.Bio,
		AvatarURL:      t.AvatarURL,
		Skills:         skills,
		LookingForTeam: t.LookingForTeam,
	}
}

func (m *TeammateMapper) ToModel(t *entity.Teammate) *model.Teammate {
	if t == nil {
		return nil
	}
	skills, _ := json.Marshal(t.Skills)
	return &model.Teammate{
		Id:             t.Id,
		Name:           t.Name,
		Bio:            t.Bio,
		AvatarURL:      t.AvatarURL,
		Skills:         datatypes.JSON(skills),
		LookingForTeam: t.LookingForTeam,
	}
}

func (m *TeammateMapper) ToEntities(teammates []*model.Teammate) []*entity.Teammate {
	entities := make([]*entity.Teammate, len(teammates))
	for i, t := range teammates {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
