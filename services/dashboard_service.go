package services

import (
	"errors"
	"math"
	"time"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"
)

type DashboardService struct {
	meals *MealService
}

func NewDashboardService(meals *MealService) *DashboardService {
	return &DashboardService{meals: meals}
}

// GetDashboard assembles the home screen: profile metrics, today's intake
// and burn, wellness, cycle position and the latest risk result. Sections
// with no data yet come back nil rather than failing the whole response.
func (s *DashboardService) GetDashboard(userID uint) (map[string]interface{}, error) {
	now := time.Now()
	out := make(map[string]interface{})

	var profile models.HealthProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		out["profile"] = map[string]interface{}{
			"bmi":          profile.BMI,
			"bmi_category": profile.BMICategory,
			"avatar":       profile.Avatar,
		}
	}

	if summary, err := s.meals.DailySummary(userID, now); err == nil {
		out["nutrition"] = summary
	}

	if activity, err := GetDailyActivity(userID, now); err == nil {
		out["activity"] = map[string]interface{}{
			"exercise_minutes":  TotalExerciseMinutes(activity),
			"calories_burned":   EstimateDailyBurn(activity),
			"hydration_glasses": activity.HydrationGlasses,
		}
	}

	if wellness, err := GetWellnessSummary(userID, now); err == nil {
		out["wellness"] = wellness
	} else if errors.Is(err, utils.ErrInsufficientData) {
		out["wellness"] = nil
	}

	if cycle, err := GetCycleOverview(userID, now); err == nil {
		out["cycle"] = cycle
	}

	var latestRisk models.RiskAssessment
	if err := config.DB.Where("user_id = ?", userID).Order("date DESC").First(&latestRisk).Error; err == nil {
		out["latest_risk"] = map[string]interface{}{
			"score": latestRisk.RiskScore,
			"level": latestRisk.RiskLevel,
			"date":  latestRisk.Date.Format("2006-01-02"),
		}
	}

	if roadmap, err := GetRoadmap(userID); err == nil {
		out["roadmap_completion"] = roadmap.OverallCompletion
	}

	return out, nil
}

// RecordTimelineSnapshot condenses the day into the five lifestyle
// sub-scores and upserts today's timeline entry. The risk trend compares
// the health-debt score against the previous snapshot.
func (s *DashboardService) RecordTimelineSnapshot(userID uint) (*models.HealthTimelineEntry, error) {
	now := time.Now()
	today := dayStartLocal(now)

	sleep, stress := s.checkInScores(userID, now)
	diet := s.dietScore(userID, now)
	exercise, hydration := s.activityScores(userID, now)

	lifestyle := math.Round((sleep + diet + exercise + stress + hydration) / 5)
	debt := 100 - lifestyle

	trend := "stable"
	var prev models.HealthTimelineEntry
	err := config.DB.
		Where("user_id = ? AND date < ?", userID, today).
		Order("date DESC").
		First(&prev).Error
	if err == nil {
		switch {
		case debt < prev.HealthDebtScore-2:
			trend = "improving"
		case debt > prev.HealthDebtScore+2:
			trend = "worsening"
		}
	}

	entry := models.HealthTimelineEntry{
		UserID:          userID,
		Date:            today,
		HealthDebtScore: debt,
		LifestyleScore:  lifestyle,
		RiskTrend:       trend,
		Sleep:           sleep,
		Diet:            diet,
		Exercise:        exercise,
		Stress:          stress,
		Hydration:       hydration,
	}

	err = config.DB.
		Where("user_id = ? AND date = ?", userID, today).
		Assign(entry).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListTimeline returns snapshots oldest first, ready to chart.
func (s *DashboardService) ListTimeline(userID uint, days int) ([]models.HealthTimelineEntry, error) {
	if days <= 0 {
		days = 30
	}
	since := dayStartLocal(time.Now()).AddDate(0, 0, -days+1)
	var entries []models.HealthTimelineEntry
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *DashboardService) checkInScores(userID uint, now time.Time) (sleep, stress float64) {
	wellness, err := GetWellnessSummary(userID, now)
	if err != nil {
		return 50, 50
	}
	return clampScore(wellness.SleepScore), clampScore(wellness.MoodScore)
}

func (s *DashboardService) dietScore(userID uint, now time.Time) float64 {
	summary, err := s.meals.DailySummary(userID, now)
	if err != nil || summary.Goal["calories"] <= 0 {
		return 50
	}
	return clampScore(summary.Percents["calories"] * 100)
}

func (s *DashboardService) activityScores(userID uint, now time.Time) (exercise, hydration float64) {
	entry, err := GetDailyActivity(userID, now)
	if err != nil {
		return 50, 50
	}

	goal, err := GetDailyGoal(userID)
	if err != nil {
		goal = nil // scored against the default targets
	}
	return scoreActivity(entry, goal)
}

// scoreActivity rates the day's movement and hydration against the stored
// goal. A missing goal falls back to 60 minutes and 8 glasses.
func scoreActivity(entry *models.DailyActivityLog, goal *models.DailyGoal) (exercise, hydration float64) {
	exerciseGoal, hydrationGoal := 60.0, 8.0
	if goal != nil {
		if goal.ExerciseMinutes > 0 {
			exerciseGoal = goal.ExerciseMinutes
		}
		if goal.HydrationGlasses > 0 {
			hydrationGoal = goal.HydrationGlasses
		}
	}

	exercise = clampScore(TotalExerciseMinutes(entry) / exerciseGoal * 100)
	hydration = clampScore(entry.HydrationGlasses / hydrationGoal * 100)
	return exercise, hydration
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return math.Round(v)
}
