package memory

import (
	"context"
	"strings"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/repository/contract"
	"hackteam-be/internal/repository/specification"

	"github.com/google/uuid"
)

// TeammateRepository serves the user directory from the embedded fixtures
// when no database is configured.
type TeammateRepository struct {
	teammates []*entity.Teammate
}

func NewTeammateRepository(teammates []*entity.Teammate) contract.TeammateRepository {
	return &TeammateRepository{teammates: teammates}
}

func matchTeammate(t *entity.Teammate, specs ...specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if t.Id != s.ID {
				return false
			}
		case specification.LookingForTeam:
			if !t.LookingForTeam {
				return false
			}
		case specification.HasSkill:
			found := false
			for _, skill := range t.Skills {
				if skill == s.Skill {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.TeammateSearch:
			term := strings.ToLower(s.Term)
			if !strings.Contains(strings.ToLower(t.Name), term) &&
				!strings.Contains(strings.ToLower(t.Bio), term) {
				return false
			}
		}
	}
	return true
}

func (r *TeammateRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Teammate, error) {
	for _, t := range r.teammates {
		if matchTeammate(t, specs...) {
			cp := *t
			cp.Skills = append([]string(nil), t.Skills...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *TeammateRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Teammate, error) {
	result := make([]*entity.Teammate, 0, len(r.teammates))
	for _, t := range r.teammates {
		if matchTeammate(t, specs...) {
			cp := *t
			cp.Skills = append([]string(nil), t.Skills...)
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *TeammateRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Teammate, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *TeammateRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func (r *TeammateRepository) DistinctSkills(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var skills []string
	for _, t := range r.teammates {
		for _, s := range t.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
	}
	return skills, nil
}
