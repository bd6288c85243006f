package services

import (
	"errors"
	"strings"
	"time"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"
)

type MealService struct {
	rek *RekognitionService
}

func NewMealService(rek *RekognitionService) *MealService {
	return &MealService{rek: rek}
}

// MealInput is one logged meal. ImageBase64 is an optional
// "data:image/...;base64," payload; when present it is stored on S3 and run
// through label detection.
type MealInput struct {
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
	MealType    string  `json:"meal_type" binding:"required"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatsG       float64 `json:"fats_g"`
	Notes       string  `json:"notes"`
	ImageBase64 string  `json:"image_base64"`
}

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// LogMeal stores one meal entry. Image upload and label detection are best
// effort after validation; a Rekognition failure does not lose the entry.
func (s *MealService) LogMeal(userID uint, input MealInput) (*models.MealEntry, error) {
	if !mealTypes[input.MealType] {
		return nil, utils.ErrInvalidInput
	}
	if input.Calories < 0 || input.ProteinG < 0 || input.CarbsG < 0 || input.FatsG < 0 {
		return nil, utils.ErrInvalidInput
	}

	date := dayStartLocal(time.Now())
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		date = dayStartLocal(parsed)
	}

	entry := models.MealEntry{
		UserID:   userID,
		Date:     date,
		MealType: input.MealType,
		Calories: input.Calories,
		ProteinG: input.ProteinG,
		CarbsG:   input.CarbsG,
		FatsG:    input.FatsG,
		Notes:    input.Notes,
	}

	if input.ImageBase64 != "" {
		url, _, err := utils.UploadBase64ImageToS3(input.ImageBase64, "meal-photos")
		if err != nil {
			return nil, err
		}
		entry.ImageURL = url

		if s.rek != nil {
			if labels, err := s.rek.RecognizeLabels(input.ImageBase64); err == nil {
				entry.ImageLabels = strings.Join(labels, ",")
			}
		}
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.MealEntry, error) {
	var meals []models.MealEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByDate(userID uint, date time.Time) ([]models.MealEntry, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)
	var meals []models.MealEntry
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	result := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("meal not found")
	}
	return nil
}

// NutritionSummary totals one day's meals against the stored daily goal.
type NutritionSummary struct {
	Date     string             `json:"date"`
	Meals    int                `json:"meals"`
	Totals   map[string]float64 `json:"totals"`
	Goal     map[string]float64 `json:"goal"`
	Percents map[string]float64 `json:"percents"`
}

// DailySummary aggregates the day's entries. Percentages cap at 1.
func (s *MealService) DailySummary(userID uint, date time.Time) (*NutritionSummary, error) {
	meals, err := s.ListMealsByDate(userID, date)
	if err != nil {
		return nil, err
	}

	var cals, protein, carbs, fats float64
	for _, m := range meals {
		cals += m.Calories
		protein += m.ProteinG
		carbs += m.CarbsG
		fats += m.FatsG
	}

	var goal models.DailyGoal
	_ = config.DB.Where("user_id = ?", userID).First(&goal).Error

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	return &NutritionSummary{
		Date:  dayStartLocal(date).Format("2006-01-02"),
		Meals: len(meals),
		Totals: map[string]float64{
			"calories": cals, "protein_g": protein, "carbs_g": carbs, "fats_g": fats,
		},
		Goal: map[string]float64{
			"calories": goal.Calories, "protein_g": goal.ProteinG, "carbs_g": goal.CarbsG, "fats_g": goal.FatsG,
		},
		Percents: map[string]float64{
			"calories": pct(cals, goal.Calories),
			"protein":  pct(protein, goal.ProteinG),
			"carbs":    pct(carbs, goal.CarbsG),
			"fats":     pct(fats, goal.FatsG),
		},
	}, nil
}
