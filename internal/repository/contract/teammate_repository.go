package contract

import (
	"context"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/repository/specification"

	"github.com/google/uuid"
)

// TeammateRepository serves the read-only user directory.
type TeammateRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Teammate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Teammate, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Teammate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// DistinctSkills returns the union of all skills across the directory,
	// first occurrence order.
	DistinctSkills(ctx context.Context) ([]string, error)
}
