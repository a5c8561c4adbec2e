package implementation

import (
	"context"
	"errors"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/mapper"
	"hackteam-be/internal/model"
	"hackteam-be/internal/repository/contract"
	"hackteam-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeammateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeammateMapper
}

func NewTeammateRepository(db *gorm.DB) contract.TeammateRepository {
	return &TeammateRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeammateMapper(),
	}
}

func (r *TeammateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TeammateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Teammate, error) {
	var modelTeammate model.Teammate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelTeammate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelTeammate), nil
}

func (r *TeammateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Teammate, error) {
	var modelTeammates []*model.Teammate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Order("created_at ASC").Find(&modelTeammates).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelTeammates), nil
}

func (r *TeammateRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Teammate, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *TeammateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Teammate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TeammateRepositoryImpl) DistinctSkills(ctx context.Context) ([]string, error) {
	// The union is computed in Go; the directory is small and the skill
	// column is a JSON array, so a SQL-side distinct buys nothing here.
	teammates, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var skills []string
	for _, t := range teammates {
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
