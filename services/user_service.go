package services

import (
	"errors"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"

	"gorm.io/gorm"
)

// ProfileInput carries the onboarding wizard / profile edit payload. Zero
// fields leave the stored value untouched.
type ProfileInput struct {
	FullName           string  `json:"full_name"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	HeightCm           float64 `json:"height_cm"`
	WeightKg           float64 `json:"weight_kg"`
	SmokingHabit       string  `json:"smoking_habit"`
	AlcoholConsumption string  `json:"alcohol_consumption"`
	SleepQuality       string  `json:"sleep_quality"`
	MedicalCondition   string  `json:"medical_condition"`
	BloodType          string  `json:"blood_type"`
	Allergies          string  `json:"allergies"`
	CurrentMedications string  `json:"current_medications"`
	PastSurgeries      string  `json:"past_surgeries"`
	FamilyHistory      string  `json:"family_history"`
	CycleLengthDays    int     `json:"cycle_length_days"`
	PeriodDurationDays int     `json:"period_duration_days"`
}

// Free-text medical history fields default to these when left blank.
var historyDefaults = map[string]string{
	"blood_type":          "Not set",
	"allergies":           "None known",
	"current_medications": "None",
	"past_surgeries":      "None",
	"family_history":      "No significant family history",
}

func defaultIfBlank(value, field string) string {
	if value == "" {
		return historyDefaults[field]
	}
	return value
}

// GetUserProfile returns the account plus its health profile as one flat
// response map.
func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	var profile models.HealthProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"full_name":            user.FullName,
		"mfa_enabled":          user.MFAEnabled,
		"onboarded":            user.Onboarded,
		"age":                  profile.Age,
		"gender":               profile.Gender,
		"height_cm":            profile.HeightCm,
		"weight_kg":            profile.WeightKg,
		"bmi":                  profile.BMI,
		"bmi_category":         profile.BMICategory,
		"smoking_habit":        profile.SmokingHabit,
		"alcohol_consumption":  profile.AlcoholConsumption,
		"sleep_quality":        profile.SleepQuality,
		"medical_condition":    profile.MedicalCondition,
		"blood_type":           profile.BloodType,
		"allergies":            profile.Allergies,
		"current_medications":  profile.CurrentMedications,
		"past_surgeries":       profile.PastSurgeries,
		"family_history":       profile.FamilyHistory,
		"avatar":               profile.Avatar,
		"cycle_length_days":    profile.CycleLengthDays,
		"period_duration_days": profile.PeriodDurationDays,
	}, nil
}

// UpsertHealthProfile applies a profile edit and recomputes BMI whenever
// height and weight are both known. Age/height/weight are validated through
// the calculator's bounds before anything is stored.
func UpsertHealthProfile(userID uint, input ProfileInput) (*models.HealthProfile, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	var profile models.HealthProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.HealthProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Age > 0 {
		if input.Age > 120 {
			return nil, utils.ErrInvalidInput
		}
		profile.Age = input.Age
	}
	if input.Gender != "" {
		profile.Gender = input.Gender
	}
	if input.HeightCm > 0 {
		profile.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		profile.WeightKg = input.WeightKg
	}
	if input.SmokingHabit != "" {
		profile.SmokingHabit = input.SmokingHabit
	}
	if input.AlcoholConsumption != "" {
		profile.AlcoholConsumption = input.AlcoholConsumption
	}
	if input.SleepQuality != "" {
		profile.SleepQuality = input.SleepQuality
	}
	if input.MedicalCondition != "" {
		profile.MedicalCondition = input.MedicalCondition
	}

	profile.BloodType = defaultIfBlank(firstNonEmpty(input.BloodType, profile.BloodType), "blood_type")
	profile.Allergies = defaultIfBlank(firstNonEmpty(input.Allergies, profile.Allergies), "allergies")
	profile.CurrentMedications = defaultIfBlank(firstNonEmpty(input.CurrentMedications, profile.CurrentMedications), "current_medications")
	profile.PastSurgeries = defaultIfBlank(firstNonEmpty(input.PastSurgeries, profile.PastSurgeries), "past_surgeries")
	profile.FamilyHistory = defaultIfBlank(firstNonEmpty(input.FamilyHistory, profile.FamilyHistory), "family_history")

	if input.CycleLengthDays > 0 {
		profile.CycleLengthDays = input.CycleLengthDays
	}
	if input.PeriodDurationDays > 0 {
		profile.PeriodDurationDays = input.PeriodDurationDays
	}

	if profile.HeightCm > 0 && profile.WeightKg > 0 {
		bmi, err := utils.CalculateBMI(profile.HeightCm, profile.WeightKg)
		if err != nil {
			return nil, err
		}
		profile.BMI = bmi
		profile.BMICategory = utils.BMICategory(bmi)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// CompleteOnboarding stores the wizard answers and flips the onboarded flag.
func CompleteOnboarding(userID uint, input ProfileInput, mfaEnabled bool) (*models.HealthProfile, error) {
	profile, err := UpsertHealthProfile(userID, input)
	if err != nil {
		return nil, err
	}
	return profile, config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"onboarded": true, "mfa_enabled": mfaEnabled}).Error
}

// SetAvatar validates the preset id against the catalog before storing it.
func SetAvatar(userID uint, avatarID string) error {
	if _, ok := models.AvatarPresets[avatarID]; !ok {
		return utils.ErrInvalidInput
	}
	return config.DB.Model(&models.HealthProfile{}).
		Where("user_id = ?", userID).
		Update("avatar", avatarID).Error
}

// DeleteAccount removes the user and every record keyed to them. This is
// the only path that hard-deletes health data.
func DeleteAccount(userID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
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
		} {
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
