package main

import (
	"log"
	"os"

	"bloompath-be/internal/model"
	"bloompath-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedNotificationTypes(db)
}

// seedNotificationTypes populates the database with default alert types.
func seedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "CRISIS_DETECTED",
			DisplayName: "Crisis Support",
			Template:    "A chat message matched crisis language. Support resources were shown immediately.",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "SELF_HARM_FLAGGED",
			DisplayName: "Screening Follow-up",
			Template:    "A screening answer flagged thoughts of self-harm (score {total_score}). Please reach out to your care provider.",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "CONCERNING_PATTERN",
			DisplayName: "Mood Pattern Check-in",
			Template:    "Your mood has been low lately (average {average_score} over {total_entries} check-ins). A little extra support can help.",
			Priority:    "MEDIUM",
			IsActive:    true,
		},
	}

	for _, t := range types {
		err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error
		if err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("✅ Notification types seeded successfully.")
}
