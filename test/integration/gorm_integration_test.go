package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"hackteam-be/internal/repository/specification"
	"hackteam-be/internal/repository/unitofwork"
	"hackteam-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.HackathonRepository())
	assert.NotNil(t, uow.TeammateRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Hackathon Repository", func(t *testing.T) {
		count, err := uow.HackathonRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Hackathon count: %d", count)
	})

	t.Run("Check Teammate Repository", func(t *testing.T) {
		count, err := uow.TeammateRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Teammate count: %d", count)
	})

	t.Run("Check Type Filter", func(t *testing.T) {
		online, err := uow.HackathonRepository().FindAll(context.Background(),
			specification.ByHackathonType{Type: "online"})
		assert.NoError(t, err)
		for _, h := range online {
			assert.Equal(t, "online", string(h.Type))
		}
	})
}
