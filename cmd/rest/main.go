package main

import (
	"context"
	"log"

	"hackteam-be/internal/bootstrap"
	"hackteam-be/internal/config"
	"hackteam-be/internal/server"
	"hackteam-be/internal/tracer"
	"hackteam-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database (optional; embedded fixtures are used when the
	// connection string is empty)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background services
	if err := container.UpdatesService.Start(context.Background()); err != nil {
		log.Printf("Background Updates Error: %v", err)
	}

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
