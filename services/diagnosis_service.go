package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"
)

type DiagnosisService struct {
	ai *AIService
}

func NewDiagnosisService(ai *AIService) *DiagnosisService {
	return &DiagnosisService{ai: ai}
}

// AssessmentInput is the symptom questionnaire payload.
type AssessmentInput struct {
	EnergyLevel    string   `json:"energy_level" binding:"required"`
	SleepBand      string   `json:"sleep_band" binding:"required"`
	StressLevel    int      `json:"stress_level" binding:"required"`
	ExerciseFreq   string   `json:"exercise_freq" binding:"required"`
	DietQuality    string   `json:"diet_quality" binding:"required"`
	Symptoms       []string `json:"symptoms"`
	MentalSymptoms []string `json:"mental_symptoms"`
	Habits         []string `json:"habits"`
	FreeText       string   `json:"free_text"`
}

// AssessmentResult is the scored outcome plus the optional AI narrative.
type AssessmentResult struct {
	ID        uint   `json:"id"`
	Emergency bool   `json:"emergency"`
	Advisory  string `json:"advisory,omitempty"`
	RiskScore int    `json:"risk_score"`
	RiskLevel string `json:"risk_level"`
	Narrative string `json:"narrative,omitempty"`
}

// SubmitAssessment scores the questionnaire. Free text is scanned for
// emergency keywords first; a hit bypasses scoring entirely, stores an
// emergency record and raises an alert. Otherwise the additive model runs
// and a narrative is requested best effort.
func (s *DiagnosisService) SubmitAssessment(userID uint, input AssessmentInput) (*AssessmentResult, error) {
	record := models.RiskAssessment{
		UserID:         userID,
		Date:           time.Now(),
		EnergyLevel:    input.EnergyLevel,
		SleepBand:      input.SleepBand,
		StressLevel:    input.StressLevel,
		ExerciseFreq:   input.ExerciseFreq,
		DietQuality:    input.DietQuality,
		Symptoms:       strings.Join(input.Symptoms, ","),
		MentalSymptoms: strings.Join(input.MentalSymptoms, ","),
		Habits:         strings.Join(input.Habits, ","),
	}

	scanText := input.FreeText + " " + strings.Join(input.Symptoms, " ")
	if emergency, keyword := utils.DetectEmergency(scanText); emergency {
		record.Emergency = true
		record.RiskLevel = "Emergency"
		if err := config.DB.Create(&record).Error; err != nil {
			return nil, err
		}
		EmitAlert(userID, "emergency", "assessment",
			fmt.Sprintf("Emergency keyword detected in assessment: %q", keyword))
		return &AssessmentResult{
			ID:        record.ID,
			Emergency: true,
			Advisory:  utils.EmergencyAdvisory,
			RiskLevel: record.RiskLevel,
		}, nil
	}

	score, level := utils.RiskScore(utils.RiskInput{
		EnergyLevel:  input.EnergyLevel,
		SleepBand:    input.SleepBand,
		StressLevel:  input.StressLevel,
		ExerciseFreq: input.ExerciseFreq,
		DietQuality:  input.DietQuality,
		Symptoms:     input.Symptoms,
	})
	record.RiskScore = score
	record.RiskLevel = level

	if err := config.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	if level == "High Risk" {
		EmitAlert(userID, "warning", "assessment",
			fmt.Sprintf("High risk assessment result (score %d). Consider seeing a doctor.", score))
	}

	narrative := s.buildNarrative(userID, &record, input)
	if narrative != "" {
		record.AINarrative = narrative
		_ = config.DB.Save(&record).Error
	}

	return &AssessmentResult{
		ID:        record.ID,
		RiskScore: score,
		RiskLevel: level,
		Narrative: narrative,
	}, nil
}

// buildNarrative asks the assistant to explain the result. Failures and
// quota exhaustion leave the narrative empty; the score already stands on
// its own.
func (s *DiagnosisService) buildNarrative(userID uint, record *models.RiskAssessment, input AssessmentInput) string {
	if s.ai == nil {
		return ""
	}
	prompt := fmt.Sprintf(
		"You are a health assistant. A user scored %d (%s) on a lifestyle risk assessment. "+
			"Energy: %s. Sleep: %s hours. Stress level: %d/10. Exercise: %s. Diet: %s. Symptoms: %s. "+
			"In under 150 words, explain what likely drives this score and suggest two practical next steps. "+
			"Do not diagnose; recommend a doctor where appropriate.",
		record.RiskScore, record.RiskLevel,
		input.EnergyLevel, input.SleepBand, input.StressLevel,
		input.ExerciseFreq, input.DietQuality, strings.Join(input.Symptoms, ", "),
	)
	narrative, err := s.ai.Narrative(userID, prompt)
	if err != nil {
		return ""
	}
	return narrative
}

// ListAssessments returns past results, most recent first.
func (s *DiagnosisService) ListAssessments(userID uint, limit int) ([]models.RiskAssessment, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.RiskAssessment
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
