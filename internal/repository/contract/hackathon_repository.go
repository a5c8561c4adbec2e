package contract

import (
	"context"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/repository/specification"

	"github.com/google/uuid"
)

// HackathonRepository serves the read-only hackathon catalog.
type HackathonRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hackathon, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hackathon, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Hackathon, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
