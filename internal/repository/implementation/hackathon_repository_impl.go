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

type HackathonRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HackathonMapper
}

func NewHackathonRepository(db *gorm.DB) contract.HackathonRepository {
	return &HackathonRepositoryImpl{
		db:     db,
		mapper: mapper.NewHackathonMapper(),
	}
}

func (r *HackathonRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HackathonRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hackathon, error) {
	var modelHackathon model.Hackathon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelHackathon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelHackathon), nil
}

func (r *HackathonRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hackathon, error) {
	var modelHackathons []*model.Hackathon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Order("date ASC").Find(&modelHackathons).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelHackathons), nil
}

func (r *HackathonRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Hackathon, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *HackathonRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Hackathon{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
