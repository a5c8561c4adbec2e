package unitofwork

import (
	"context"

	"hackteam-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	HackathonRepository() contract.HackathonRepository
	TeammateRepository() contract.TeammateRepository
}
