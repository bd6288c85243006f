package services

import (
	"testing"
	"time"

	"github.com/rishabhc286/Vital-x/models"
)

// TestScoreActivity checks the default targets, a stored goal, and the nil
// goal the lookup falls back to on failure.
func TestScoreActivity(t *testing.T) {
	entry := &models.DailyActivityLog{WalkMinutes: 30, HydrationGlasses: 4}

	tests := []struct {
		name          string
		goal          *models.DailyGoal
		wantExercise  float64
		wantHydration float64
	}{
		{"nil goal uses defaults", nil, 50, 50},
		{"zero-valued goal uses defaults", &models.DailyGoal{}, 50, 50},
		{"stored goal", &models.DailyGoal{ExerciseMinutes: 30, HydrationGlasses: 16}, 100, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exercise, hydration := scoreActivity(entry, tt.goal)
			if exercise != tt.wantExercise || hydration != tt.wantHydration {
				t.Errorf("scoreActivity = %v/%v, want %v/%v",
					exercise, hydration, tt.wantExercise, tt.wantHydration)
			}
		})
	}
}

// TestActivityScoresSurvivesGoalLookupFailure drops the goals table so the
// goal fetch errors while the activity fetch still succeeds; the snapshot
// must fall back to default targets instead of crashing.
func TestActivityScoresSurvivesGoalLookupFailure(t *testing.T) {
	db := testDB(t)
	const userID = 1

	if _, err := UpsertDailyActivity(userID, ActivityInput{WalkMinutes: 30, HydrationGlasses: 4}); err != nil {
		t.Fatalf("UpsertDailyActivity: %v", err)
	}
	if err := db.Migrator().DropTable(&models.DailyGoal{}); err != nil {
		t.Fatalf("drop goals table: %v", err)
	}

	svc := NewDashboardService(nil)
	exercise, hydration := svc.activityScores(userID, time.Now())
	if exercise != 50 || hydration != 50 {
		t.Errorf("activityScores = %v/%v, want 50/50 from default targets", exercise, hydration)
	}
}
