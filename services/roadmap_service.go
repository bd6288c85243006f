package services

import (
	"math"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"
)

// RoadmapStep is one entry of the static improvement plan. Only the per-user
// completion flags are stored; the catalog itself ships with the app.
type RoadmapStep struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Priority string   `json:"priority"` // high | medium | low
	Effort   string   `json:"effort"`   // quick-win | habit | project
	Actions  []string `json:"actions"`
}

// DefaultRoadmap is the six-step baseline plan every user starts from.
var DefaultRoadmap = []RoadmapStep{
	{
		ID: "sleep-routine", Title: "Build a consistent sleep routine", Priority: "high", Effort: "habit",
		Actions: []string{
			"Set a fixed bedtime and wake-up time",
			"No screens for 30 minutes before bed",
			"Track sleep quality in your daily check-in",
		},
	},
	{
		ID: "hydration", Title: "Hit your daily hydration target", Priority: "high", Effort: "quick-win",
		Actions: []string{
			"Keep a water bottle within reach",
			"Log glasses of water with your activity",
		},
	},
	{
		ID: "move-daily", Title: "Move every day", Priority: "high", Effort: "habit",
		Actions: []string{
			"Walk at least 30 minutes",
			"Log your activity minutes",
			"Add two strength sessions per week",
		},
	},
	{
		ID: "balanced-meals", Title: "Balance your plate", Priority: "medium", Effort: "habit",
		Actions: []string{
			"Log every meal for one week",
			"Apply a macro split that fits your goal",
			"Swap one processed snack for fruit each day",
		},
	},
	{
		ID: "stress-checkins", Title: "Manage stress actively", Priority: "medium", Effort: "habit",
		Actions: []string{
			"Complete a mental health check-in daily",
			"Try a 5-minute breathing exercise when stressed",
		},
	},
	{
		ID: "preventive-care", Title: "Stay on top of preventive care", Priority: "low", Effort: "project",
		Actions: []string{
			"Book an annual physical",
			"Keep your medical history up to date in your profile",
		},
	},
}

// RoadmapStepStatus is a step merged with the user's completion state.
type RoadmapStepStatus struct {
	RoadmapStep
	Completed []bool  `json:"completed"`
	Progress  float64 `json:"progress"`
}

// RoadmapOverview is the roadmap page payload.
type RoadmapOverview struct {
	Steps             []RoadmapStepStatus `json:"steps"`
	OverallCompletion float64             `json:"overall_completion"`
}

// GetRoadmap merges the static catalog with the user's checked actions and
// computes per-step and overall completion percentages.
func GetRoadmap(userID uint) (*RoadmapOverview, error) {
	var checks []models.RoadmapActionCheck
	if err := config.DB.Where("user_id = ?", userID).Find(&checks).Error; err != nil {
		return nil, err
	}

	checked := make(map[string]map[int]bool)
	for _, c := range checks {
		if checked[c.StepID] == nil {
			checked[c.StepID] = make(map[int]bool)
		}
		checked[c.StepID][c.ActionIndex] = true
	}

	var totalActions, totalDone int
	steps := make([]RoadmapStepStatus, 0, len(DefaultRoadmap))
	for _, step := range DefaultRoadmap {
		status := RoadmapStepStatus{
			RoadmapStep: step,
			Completed:   make([]bool, len(step.Actions)),
		}
		done := 0
		for i := range step.Actions {
			if checked[step.ID][i] {
				status.Completed[i] = true
				done++
			}
		}
		if len(step.Actions) > 0 {
			status.Progress = roundPct(float64(done) / float64(len(step.Actions)))
		}
		totalActions += len(step.Actions)
		totalDone += done
		steps = append(steps, status)
	}

	overview := &RoadmapOverview{Steps: steps}
	if totalActions > 0 {
		overview.OverallCompletion = roundPct(float64(totalDone) / float64(totalActions))
	}
	return overview, nil
}

// ToggleRoadmapAction flips one action's completion flag.
func ToggleRoadmapAction(userID uint, stepID string, actionIndex int) error {
	step := findStep(stepID)
	if step == nil || actionIndex < 0 || actionIndex >= len(step.Actions) {
		return utils.ErrInvalidInput
	}

	var existing models.RoadmapActionCheck
	err := config.DB.
		Where("user_id = ? AND step_id = ? AND action_index = ?", userID, stepID, actionIndex).
		First(&existing).Error
	if err == nil {
		return config.DB.Unscoped().Delete(&existing).Error
	}

	return config.DB.Create(&models.RoadmapActionCheck{
		UserID:      userID,
		StepID:      stepID,
		ActionIndex: actionIndex,
	}).Error
}

func findStep(stepID string) *RoadmapStep {
	for i := range DefaultRoadmap {
		if DefaultRoadmap[i].ID == stepID {
			return &DefaultRoadmap[i]
		}
	}
	return nil
}

func roundPct(frac float64) float64 {
	return math.Round(frac*1000) / 10
}
