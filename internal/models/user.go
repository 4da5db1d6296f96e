package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bytetrack/backend/internal/types"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// UserProfile stores the onboarding biometrics together with the computed
// energy targets. The targets are derived data: every profile write
// recomputes them from the biometrics.
type UserProfile struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Age           int                 `gorm:"not null" json:"age"`
	Sex           types.Sex           `gorm:"size:10;not null" json:"sex"`
	Height        float64             `gorm:"not null" json:"height"`
	Weight        float64             `gorm:"not null" json:"weight"`
	GoalWeight    *float64            `json:"goal_weight,omitempty"`
	ActivityLevel types.ActivityLevel `gorm:"size:20;not null" json:"activity_level"`
	Goal          types.Goal          `gorm:"size:10;not null" json:"goal"`

	BMR            float64 `gorm:"not null" json:"bmr"`
	TDEE           float64 `gorm:"not null" json:"tdee"`
	TargetCalories int     `gorm:"not null" json:"target_calories"`
	CarbsGrams     int     `gorm:"not null" json:"carbs_grams"`
	CarbsPercent   int     `gorm:"not null" json:"carbs_percent"`
	ProteinGrams   int     `gorm:"not null" json:"protein_grams"`
	ProteinPercent int     `gorm:"not null" json:"protein_percent"`
	FatGrams       int     `gorm:"not null" json:"fat_grams"`
	FatPercent     int     `gorm:"not null" json:"fat_percent"`

	ProfilePictureURL string `gorm:"size:255" json:"profile_picture_url"`
}

// Biometrics rebuilds the calculator input from the stored row.
func (p *UserProfile) Biometrics() types.BiometricProfile {
	return types.BiometricProfile{
		Age:           p.Age,
		Sex:           p.Sex,
		Height:        p.Height,
		Weight:        p.Weight,
		GoalWeight:    p.GoalWeight,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
	}
}

// Targets rebuilds the computed energy targets from the stored row.
func (p *UserProfile) Targets() types.EnergyTargets {
	return types.EnergyTargets{
		BMR:            p.BMR,
		TDEE:           p.TDEE,
		TargetCalories: p.TargetCalories,
		MacroTargets: types.MacroTargets{
			Carbs:   types.MacroTarget{Grams: p.CarbsGrams, PercentOfCalories: p.CarbsPercent},
			Protein: types.MacroTarget{Grams: p.ProteinGrams, PercentOfCalories: p.ProteinPercent},
			Fat:     types.MacroTarget{Grams: p.FatGrams, PercentOfCalories: p.FatPercent},
		},
	}
}

// ApplyTargets writes freshly computed targets onto the profile row.
func (p *UserProfile) ApplyTargets(t types.EnergyTargets) {
	p.BMR = t.BMR
	p.TDEE = t.TDEE
	p.TargetCalories = t.TargetCalories
	p.CarbsGrams = t.MacroTargets.Carbs.Grams
	p.CarbsPercent = t.MacroTargets.Carbs.PercentOfCalories
	p.ProteinGrams = t.MacroTargets.Protein.Grams
	p.ProteinPercent = t.MacroTargets.Protein.PercentOfCalories
	p.FatGrams = t.MacroTargets.Fat.Grams
	p.FatPercent = t.MacroTargets.Fat.PercentOfCalories
}
