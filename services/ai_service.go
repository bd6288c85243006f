package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"
)

// ErrRateLimited is returned when a user exhausts the AI request quota.
var ErrRateLimited = errors.New("ai request limit reached")

// AIService wraps the hosted text-generation endpoint. Per-user quotas live
// in memory; the limiter values themselves are pure, the service only adds
// the lock.
type AIService struct {
	apiKey string
	model  string
	client *http.Client

	mu       sync.Mutex
	limiters map[uint]utils.RateLimiter
}

func NewAIService() *AIService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &AIService{
		apiKey:   os.Getenv("GEMINI_API_KEY"),
		model:    model,
		client:   &http.Client{Timeout: 20 * time.Second},
		limiters: make(map[uint]utils.RateLimiter),
	}
}

// allow consumes one quota slot for the user.
func (s *AIService) allow(userID uint, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := utils.Tick(s.limiters[userID], now)
	s.limiters[userID] = next
	return ok
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig map[string]interface{} `json:"generationConfig"`
	SafetySettings   []map[string]string    `json:"safetySettings"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt to the endpoint and returns the first candidate.
func (s *AIService) generate(prompt string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("GEMINI_API_KEY not set")
	}

	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: map[string]interface{}{
			"temperature":     0.7,
			"maxOutputTokens": 1024,
		},
		SafetySettings: []map[string]string{
			{"category": "HARM_CATEGORY_DANGEROUS_CONTENT", "threshold": "BLOCK_ONLY_HIGH"},
		},
	}

	b, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation payload: %w", err)
	}

	u := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		s.model, s.apiKey,
	)

	resp, err := s.client.Post(u, "application/json", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to call generation API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse generation JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty generation response")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// healthContext summarizes the user's stored data so the assistant can
// answer in context.
func (s *AIService) healthContext(userID uint) string {
	var sb strings.Builder

	var profile models.HealthProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		fmt.Fprintf(&sb, "User profile: age %d, gender %s, BMI %.1f (%s).\n",
			profile.Age, profile.Gender, profile.BMI, profile.BMICategory)
		if profile.MedicalCondition != "" {
			fmt.Fprintf(&sb, "Known condition: %s.\n", profile.MedicalCondition)
		}
		if profile.Allergies != "" {
			fmt.Fprintf(&sb, "Allergies: %s.\n", profile.Allergies)
		}
	}

	if wellness, err := GetWellnessSummary(userID, time.Now()); err == nil {
		fmt.Fprintf(&sb, "Current wellness score: %d (%s).\n", wellness.Score, wellness.Label)
	}

	var latest models.RiskAssessment
	if err := config.DB.Where("user_id = ?", userID).Order("date DESC").First(&latest).Error; err == nil {
		fmt.Fprintf(&sb, "Latest risk assessment: %s (score %d).\n", latest.RiskLevel, latest.RiskScore)
	}

	return sb.String()
}

const fallbackReply = "I'm unable to reach the assistant right now. For general wellbeing, keep up regular sleep, hydration and movement, and contact a healthcare professional for anything urgent."

// MedicalDisclaimer trails every assistant reply, whatever produced it.
const MedicalDisclaimer = "\n\n⚠️ Medical Disclaimer: This information is for educational purposes only and is not a substitute for professional medical advice, diagnosis, or treatment. Always seek the advice of your physician or other qualified health provider with any questions you may have regarding a medical condition."

func withDisclaimer(reply string) string {
	if strings.HasSuffix(reply, MedicalDisclaimer) {
		return reply
	}
	return reply + MedicalDisclaimer
}

// Chat handles one assistant turn: quota check, emergency scan, prompt
// assembly with stored context and recent history, then persistence of both
// sides of the exchange.
func (s *AIService) Chat(userID uint, message string) (string, bool, error) {
	if strings.TrimSpace(message) == "" {
		return "", false, utils.ErrInvalidInput
	}
	if !s.allow(userID, time.Now()) {
		return "", false, ErrRateLimited
	}

	if emergency, keyword := utils.DetectEmergency(message); emergency {
		EmitAlert(userID, "emergency", "chat", fmt.Sprintf("Emergency keyword detected in chat: %q", keyword))
		advisory := withDisclaimer(utils.EmergencyAdvisory)
		s.saveTurn(userID, message, advisory)
		return advisory, true, nil
	}

	var history []models.ChatMessage
	_ = config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(10).
		Find(&history).Error

	var sb strings.Builder
	sb.WriteString("You are a supportive health assistant for the Vital-X app. ")
	sb.WriteString("You are not a doctor and must recommend professional care for anything serious.\n\n")
	sb.WriteString(s.healthContext(userID))
	if len(history) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for i := len(history) - 1; i >= 0; i-- {
			fmt.Fprintf(&sb, "%s: %s\n", history[i].Role, history[i].Message)
		}
	}
	fmt.Fprintf(&sb, "\nuser: %s\nassistant:", message)

	reply, err := s.generate(sb.String())
	if err != nil {
		reply = fallbackReply
	}
	reply = withDisclaimer(reply)

	s.saveTurn(userID, message, reply)
	return reply, false, nil
}

func (s *AIService) saveTurn(userID uint, userMsg, assistantMsg string) {
	_ = config.DB.Create(&models.ChatMessage{UserID: userID, Role: "user", Message: userMsg}).Error
	_ = config.DB.Create(&models.ChatMessage{UserID: userID, Role: "assistant", Message: assistantMsg}).Error
}

// ChatHistory returns the conversation oldest first.
func (s *AIService) ChatHistory(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var history []models.ChatMessage
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

// ClearChatHistory deletes the stored conversation.
func (s *AIService) ClearChatHistory(userID uint) error {
	return config.DB.Unscoped().
		Where("user_id = ?", userID).
		Delete(&models.ChatMessage{}).Error
}

// Narrative produces an explanation for a saved assessment; quota applies.
func (s *AIService) Narrative(userID uint, prompt string) (string, error) {
	if !s.allow(userID, time.Now()) {
		return "", ErrRateLimited
	}
	out, err := s.generate(prompt)
	if err != nil {
		return "", err
	}
	return withDisclaimer(out), nil
}
