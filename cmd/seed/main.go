package main

import (
	"log"

	"hackteam-be/internal/config"
	"hackteam-be/internal/mapper"
	"hackteam-be/internal/model"
	"hackteam-be/internal/seed"
	"hackteam-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

// Seeds the hackathon catalog and teammate directory into Postgres. The
// server falls back to embedded fixtures without a database, so running
// this is only needed for the Postgres-backed setup.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required for seeding")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	if err := db.AutoMigrate(&model.Hackathon{}, &model.Teammate{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seedHackathons(db)
	seedTeammates(db)

	color.Green("Seeding complete")
}

func seedHackathons(db *gorm.DB) {
	m := mapper.NewHackathonMapper()
	for _, h := range seed.Hackathons() {
		var count int64
		db.Model(&model.Hackathon{}).Where("id = ?", h.Id).Count(&count)
		if count > 0 {
			color.Yellow("Hackathon %q already present, skipping", h.Name)
			continue
		}
		if err := db.Create(m.ToModel(h)).Error; err != nil {
			color.Red("Failed to seed hackathon %q: %v", h.Name, err)
			continue
		}
		color.Cyan("Seeded hackathon %q", h.Name)
	}
}

func seedTeammates(db *gorm.DB) {
	m := mapper.NewTeammateMapper()
	for _, t := range seed.Teammates() {
		var count int64
		db.Model(&model.Teammate{}).Where("id = ?", t.Id).Count(&count)
		if count > 0 {
			color.Yellow("Teammate %q already present, skipping", t.Name)
			continue
		}
		if err := db.Create(m.ToModel(t)).Error; err != nil {
			color.Red("Failed to seed teammate %q: %v", t.Name, err)
			continue
		}
		color.Cyan("Seeded teammate %q", t.Name)
	}
}
