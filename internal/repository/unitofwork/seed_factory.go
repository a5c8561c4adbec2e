package unitofwork

import (
	"context"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/repository/contract"
	"hackteam-be/internal/repository/memory"
)

// SeedRepositoryFactory backs the unit of work with the embedded fixtures.
// Used when DB_CONNECTION_STRING is not set; the catalog and directory are
// read-only so the transactional methods are no-ops.
type SeedRepositoryFactory struct {
	hackathonRepo contract.HackathonRepository
	teammateRepo  contract.TeammateRepository
}

func NewSeedRepositoryFactory(hackathons []*entity.Hackathon, teammates []*entity.Teammate) RepositoryFactory {
	return &SeedRepositoryFactory{
		hackathonRepo: memory.NewHackathonRepository(hackathons),
		teammateRepo:  memory.NewTeammateRepository(teammates),
	}
}

func (f *SeedRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &seedUnitOfWork{factory: f}
}

type seedUnitOfWork struct {
	factory *SeedRepositoryFactory
}

func (u *seedUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *seedUnitOfWork) Commit() error                   { return nil }
func (u *seedUnitOfWork) Rollback() error                 { return nil }

func (u *seedUnitOfWork) HackathonRepository() contract.HackathonRepository {
	return u.factory.hackathonRepo
}

func (u *seedUnitOfWork) TeammateRepository() contract.TeammateRepository {
	return u.factory.teammateRepo
}
