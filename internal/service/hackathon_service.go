package service

import (
	"context"

	"hackteam-be/internal/dto"
	"hackteam-be/internal/entity"
	"hackteam-be/internal/repository/specification"
	"hackteam-be/internal/repository/unitofwork"
)

type IHackathonService interface {
	List(ctx context.Context, filter dto.HackathonFilter) ([]dto.HackathonResponse, error)
}

type hackathonService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHackathonService(uowFactory unitofwork.RepositoryFactory) IHackathonService {
	return &hackathonService{uowFactory: uowFactory}
}

func (s *hackathonService) List(ctx context.Context, filter dto.HackathonFilter) ([]dto.HackathonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if filter.Search != "" {
		specs = append(specs, specification.HackathonSearch{Term: filter.Search})
	}
	if filter.Type != "" {
		specs = append(specs, specification.ByHackathonType{Type: filter.Type})
	}

	hackathons, err := uow.HackathonRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.HackathonResponse, 0, len(hackathons))
	for _, h := range hackathons {
		result = append(result, toHackathonResponse(h))
	}
	return result, nil
}

func toHackathonResponse(h *entity.Hackathon) dto.HackathonResponse {
	return dto.HackathonResponse{
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
