package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"sachify/internal/config"
	"sachify/internal/domain/entity"
	"sachify/internal/domain/store"
	"sachify/internal/domain/store/repository"
)

// Resets the notes schema and seeds a handful of sample meeting notes
// for local development and demos.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := store.Init(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	// Start from a clean slate
	if err := db.Migrator().DropTable(&entity.Note{}); err != nil {
		log.Fatalf("failed to drop notes table: %v", err)
	}
	if err := db.AutoMigrate(&entity.Note{}); err != nil {
		log.Fatalf("failed to recreate notes table: %v", err)
	}

	repo := repository.NewNoteRepository(db)
	for _, note := range sampleNotes() {
		if err := repo.Insert(note); err != nil {
			log.Fatalf("failed to seed note for %s: %v", note.CompanyName, err)
		}
		log.Infof("seeded: %s - %s", note.CompanyName, note.Subject)
	}
	log.Info("database setup completed")
}

func sampleNotes() []*entity.Note {
	today := time.Now().Format("2006-01-02")

	return []*entity.Note{
		{
			CompanyName:  "Acme Corp",
			Subject:      "Product Development Meeting",
			Date:         today,
			StartTime:    "09:30",
			EndTime:      "10:00",
			Participants: "John Doe, Jane Smith, Mike Johnson",
			AISummary:    "Discussed Q2 feature requirements and timeline. Team agreed on sprint planning approach and resource allocation for new product features.",
			Notes:        "Discussed new feature requirements and timeline for Q2 release. Team is excited about the new direction and ready to start implementation.",
		},
		{
			CompanyName:  "TechStart Inc",
			Subject:      "Funding Round Discussion",
			Date:         today,
			StartTime:    "14:00",
			EndTime:      "15:00",
			Participants: "Sarah Wilson, David Chen, Lisa Park",
			AISummary:    "Reviewed Series A funding requirements and investor presentations. Discussed valuation expectations and growth metrics.",
			Notes:        "Prepared investor deck and discussed funding strategy for next quarter. Need to follow up with potential investors.",
		},
		{
			CompanyName:  "Global Solutions",
			Subject:      "Client Onboarding Call",
			Date:         today,
			StartTime:    "11:00",
			EndTime:      "11:30",
			Participants: "Mark Thompson, Emma Davis, Alex Rodriguez",
			AISummary:    "Walked through platform features and integration requirements. Set up next steps for implementation timeline.",
			Notes:        "Client showed interest in advanced analytics features. Need to prepare demo for next week.",
		},
	}
}
