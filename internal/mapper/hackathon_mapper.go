package mapper

import (
	"hackteam-be/internal/entity"
	"hackteam-be/internal/model"
)

type HackathonMapper struct{}

func NewHackathonMapper() *HackathonMapper {
	return &HackathonMapper{}
}

func (m *HackathonMapper) ToEntity(h *model.Hackathon) *entity.Hackathon {
	if h == nil {
		return nil
	}
	return &entity.Hackathon{
		Id:           h.Id,
		Name:         h.Name,
		Description:  h.Description,
		ImageURL:     h.ImageURL,
		Type:         entity.HackathonType(h.Type),
		Date:         h.Date,
		Location:     h.Location,
		Participants: h.Participants,
	}
}

func (m *HackathonMapper) ToModel(h *entity.Hackathon) *model.Hackathon {
	if h == nil {
		return nil
	}
	return &model.Hackathon{
		Id:           h.Id,
		Name:         h.Name,
		Description:  h.Description,
		ImageURL:     h.ImageURL,
		Type:         string(h.Type),
		Date:         h.Date,
		Location:     h.Location,
		Participants: h.Participants,
	}
}

func (m *HackathonMapper) ToEntities(hackathons []*model.Hackathon) []*entity.Hackathon {
	entities := make([]*entity.Hackathon, len(hackathons))
	for i, h := range hackathons {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
