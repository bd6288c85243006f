package services

import (
	"testing"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB points config.DB at a fresh in-memory database for the duration of
// one test and restores the previous handle afterwards.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// a second pool connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.HealthProfile{},
		&models.MenstruationCycle{},
		&models.MealEntry{},
		&models.DailyActivityLog{},
		&models.DailyGoal{},
		&models.MentalHealthCheckIn{},
		&models.RiskAssessment{},
		&models.RoadmapActionCheck{},
		&models.ChatMessage{},
		&models.HealthTimelineEntry{},
		&models.Alert{},
		&models.UserDevice{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}
