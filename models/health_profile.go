package models

import (
	"gorm.io/gorm"
)

// HealthProfile holds the onboarding questionnaire answers plus the derived
// BMI fields. BMI is recomputed on every write that touches height or weight,
// so it is never stale.
type HealthProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Age      int     // years, 1-120
	Gender   string  // "male" | "female" | "other"
	HeightCm float64 // 50-300
	WeightKg float64 // 20-500

	BMI         float64 // one decimal
	BMICategory string

	// Lifestyle (step 2 of the wizard)
	SmokingHabit       string
	AlcoholConsumption string
	SleepQuality       string
	MedicalCondition   string

	// Medical history (free text, defaulted when left blank)
	BloodType          string
	Allergies          string
	CurrentMedications string
	PastSurgeries      string
	FamilyHistory      string

	Avatar string `gorm:"size:16"` // one of the preset avatar IDs

	// Optional menstruation baseline captured at onboarding (female users)
	CycleLengthDays    int
	PeriodDurationDays int
}

type AvatarPreset struct {
	Emoji string `json:"emoji"`
	Name  string `json:"name"`
}

// AvatarPresets is the fixed set of selectable profile identities.
var AvatarPresets = map[string]AvatarPreset{
	"avatar1":  {Emoji: "👨‍💼", Name: "Professional"},
	"avatar2":  {Emoji: "👩‍💼", Name: "Executive"},
	"avatar3":  {Emoji: "👨‍⚕️", Name: "Doctor"},
	"avatar4":  {Emoji: "👩‍⚕️", Name: "Nurse"},
	"avatar5":  {Emoji: "👨‍🎓", Name: "Student"},
	"avatar6":  {Emoji: "👩‍🎓", Name: "Scholar"},
	"avatar7":  {Emoji: "👨‍💻", Name: "Developer"},
	"avatar8":  {Emoji: "👩‍💻", Name: "Coder"},
	"avatar9":  {Emoji: "🧑‍🎨", Name: "Artist"},
	"avatar10": {Emoji: "👨‍🍳", Name: "Chef"},
	"avatar11": {Emoji: "👩‍🏫", Name: "Teacher"},
	"avatar12": {Emoji: "🧑‍🚀", Name: "Astronaut"},
	"avatar13": {Emoji: "👨‍🔬", Name: "Scientist"},
	"avatar14": {Emoji: "👩‍🔬", Name: "Researcher"},
	"avatar15": {Emoji: "🧑‍⚖️", Name: "Lawyer"},
	"avatar16": {Emoji: "👨‍🏭", Name: "Engineer"},
}
