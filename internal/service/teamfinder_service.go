package service

import (
	"context"

	"hackteam-be/internal/dto"
	"hackteam-be/internal/entity"
	"hackteam-be/internal/repository/specification"
	"hackteam-be/internal/repository/unitofwork"
)

type ITeamFinderService interface {
	List(ctx context.Context, filter dto.TeammateFilter) ([]dto.TeammateResponse, error)
	Skills(ctx context.Context) ([]string, error)
}

type teamFinderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTeamFinderService(uowFactory unitofwork.RepositoryFactory) ITeamFinderService {
	return &teamFinderService{uowFactory: uowFactory}
}

func (s *teamFinderService) List(ctx context.Context, filter dto.TeammateFilter) ([]dto.TeammateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The directory only ever shows people open to joining a team; the
	// search and skill filters narrow within that set.
	specs := []specification.Specification{specification.LookingForTeam{}}
	if filter.Search != "" {
		specs = append(specs, specification.TeammateSearch{Term: filter.Search})
	}
	if filter.Skill != "" {
		specs = append(specs, specification.HasSkill{Skill: filter.Skill})
	}

	teammates, err := uow.TeammateRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TeammateResponse, 0, len(teammates))
	for _, t := range teammates {
		result = append(result, toTeammateResponse(t))
	}
	return result, nil
}

// Skills feeds the team-finder filter dropdown.
func (s *teamFinderService) Skills(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.TeammateRepository().DistinctSkills(ctx)
}

func toTeammateResponse(t *entity.Teammate) dto.TeammateResponse {
	return dto.TeammateResponse{
		Id:             t.Id,
		Name:           t.Name,
		Bio:            t.Bio,
		AvatarURL:      t.AvatarURL,
		Skills:         t.Skills,
		LookingForTeam: t.LookingForTeam,
	}
}
