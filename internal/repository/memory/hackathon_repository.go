package memory

import (
	"context"
	"strings"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/repository/contract"
	"hackteam-be/internal/repository/specification"

	"github.com/google/uuid"
)

// HackathonRepository serves the catalog from the embedded fixtures when no
// database is configured. It interprets the same specifications the GORM
// implementation applies as SQL.
type HackathonRepository struct {
	hackathons []*entity.Hackathon
}

func NewHackathonRepository(hackathons []*entity.Hackathon) contract.HackathonRepository {
	return &HackathonRepository{hackathons: hackathons}
}

func matchHackathon(h *entity.Hackathon, specs ...specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if h.Id != s.ID {
				return false
			}
		case specification.ByHackathonType:
			if string(h.Type) != s.Type {
				return false
			}
		case specification.HackathonSearch:
			term := strings.ToLower(s.Term)
			if !strings.Contains(strings.ToLower(h.Name), term) &&
				!strings.Contains(strings.ToLower(h.Description), term) {
				return false
			}
		}
	}
	return true
}

func (r *HackathonRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hackathon, error) {
	for _, h := range r.hackathons {
		if matchHackathon(h, specs...) {
			cp := *h
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *HackathonRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hackathon, error) {
	result := make([]*entity.Hackathon, 0, len(r.hackathons))
	for _, h := range r.hackathons {
		if matchHackathon(h, specs...) {
			cp := *h
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *HackathonRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Hackathon, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *HackathonRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}
