package services

import (
	"errors"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"

	"gorm.io/gorm"
)

// CalculatorInput drives the full BMI/BMR/TDEE/macro pipeline. When fields
// are left zero they are pulled from the stored health profile.
type CalculatorInput struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	MacroSplit    string  `json:"macro_split"`
}

// CalculatorResult is the full derived-metrics response.
type CalculatorResult struct {
	BMI         float64                `json:"bmi"`
	BMICategory string                 `json:"bmi_category"`
	BMR         float64                `json:"bmr"`
	TDEE        int                    `json:"tdee"`
	Goals       utils.GoalCalorieTable `json:"goal_calories"`
	Macros      utils.MacroTargets     `json:"macros"`
	MacroSplit  string                 `json:"macro_split"`
	MealPlan    []utils.MealSuggestion `json:"meal_plan"`
}

// RunCalculator derives every metric from one input set. Profile values fill
// the gaps so the endpoint works straight off onboarding data.
func RunCalculator(userID uint, input CalculatorInput) (*CalculatorResult, error) {
	if input.Age == 0 || input.HeightCm == 0 || input.WeightKg == 0 || input.Gender == "" {
		var profile models.HealthProfile
		err := config.DB.Where("user_id = ?", userID).First(&profile).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if input.Age == 0 {
			input.Age = profile.Age
		}
		if input.Gender == "" {
			input.Gender = profile.Gender
		}
		if input.HeightCm == 0 {
			input.HeightCm = profile.HeightCm
		}
		if input.WeightKg == 0 {
			input.WeightKg = profile.WeightKg
		}
	}
	if input.MacroSplit == "" {
		input.MacroSplit = "balanced"
	}

	bmi, err := utils.CalculateBMI(input.HeightCm, input.WeightKg)
	if err != nil {
		return nil, err
	}
	bmr, err := utils.CalculateBMR(input.Age, input.HeightCm, input.WeightKg, input.Gender)
	if err != nil {
		return nil, err
	}
	tdee, err := utils.CalculateTDEE(bmr, input.ActivityLevel)
	if err != nil {
		return nil, err
	}
	macros, err := utils.AllocateMacros(float64(tdee), input.MacroSplit)
	if err != nil {
		return nil, err
	}
	plan, err := utils.MealPlan(float64(tdee))
	if err != nil {
		return nil, err
	}

	return &CalculatorResult{
		BMI:         bmi,
		BMICategory: utils.BMICategory(bmi),
		BMR:         bmr,
		TDEE:        tdee,
		Goals:       utils.GoalCalories(tdee),
		Macros:      macros,
		MacroSplit:  input.MacroSplit,
		MealPlan:    plan,
	}, nil
}

// ApplyGoalInput selects which calorie target from the calculator result
// becomes the stored daily goal.
type ApplyGoalInput struct {
	Calories         float64 `json:"calories" binding:"required"`
	MacroSplit       string  `json:"macro_split"`
	HydrationGlasses float64 `json:"hydration_glasses"`
	ExerciseMinutes  float64 `json:"exercise_minutes"`
}

// ApplyDailyGoal persists a calorie target plus its macro allocation as the
// user's daily goal.
func ApplyDailyGoal(userID uint, input ApplyGoalInput) (*models.DailyGoal, error) {
	if input.MacroSplit == "" {
		input.MacroSplit = "balanced"
	}
	macros, err := utils.AllocateMacros(input.Calories, input.MacroSplit)
	if err != nil {
		return nil, err
	}

	var goal models.DailyGoal
	err = config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	goal.Calories = input.Calories
	goal.ProteinG = float64(macros.ProteinG)
	goal.CarbsG = float64(macros.CarbsG)
	goal.FatsG = float64(macros.FatsG)
	if input.HydrationGlasses > 0 {
		goal.HydrationGlasses = input.HydrationGlasses
	}
	if input.ExerciseMinutes > 0 {
		goal.ExerciseMinutes = input.ExerciseMinutes
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetDailyGoal returns the stored goal, or a zero goal if none was applied.
func GetDailyGoal(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyGoal{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
