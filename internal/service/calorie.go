package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/bytetrack/backend/internal/types"
)

// ErrInvalidInput reports a malformed or out-of-domain biometric profile.
// Callers must treat it as a validation failure and never persist targets
// computed from such input.
var ErrInvalidInput = errors.New("invalid input")

// MinSafeCalories is the floor for the daily calorie target. A deficit
// never pushes the target below this value.
const MinSafeCalories = 1200

// CalorieAdjustment is the deficit/surplus applied for the lose and gain
// goals, roughly 0.5 kg of body weight per week.
const CalorieAdjustment = 500

// Calories per gram of each macronutrient.
const (
	CaloriesPerGramProtein = 4
	CaloriesPerGramCarbs   = 4
	CaloriesPerGramFat     = 9
)

// ActivityFactors maps activity levels to TDEE multipliers.
var ActivityFactors = map[types.ActivityLevel]float64{
	types.ActivitySedentary: 1.2,
	types.ActivityLight:     1.375,
	types.ActivityModerate:  1.55,
	types.ActivityVery:      1.725,
	types.ActivityExtreme:   1.9,
}

// MacroSplit is the percent-of-calories allocation for one goal. The
// three percentages always sum to exactly 100.
type MacroSplit struct {
	CarbsPercent   int
	ProteinPercent int
	FatPercent     int
}

// MacroSplits is the per-goal macro allocation table. Losing weight gets
// a higher protein share to preserve lean mass; gaining gets a higher
// carb share.
var MacroSplits = map[types.Goal]MacroSplit{
	types.GoalLose:     {CarbsPercent: 40, ProteinPercent: 30, FatPercent: 30},
	types.GoalMaintain: {CarbsPercent: 50, ProteinPercent: 20, FatPercent: 30},
	types.GoalGain:     {CarbsPercent: 50, ProteinPercent: 25, FatPercent: 25},
}

// CalorieService computes energy targets from biometric profiles using
// the Mifflin-St Jeor formula family. All methods are pure; nothing is
// stored or mutated.
type CalorieService struct{}

// NewCalorieService creates a new calorie service
func NewCalorieService() *CalorieService {
	return &CalorieService{}
}

// CalculateBMR computes the basal metabolic rate in kcal/day.
//
//	male:   10*weight + 6.25*height - 5*age + 5
//	female: 10*weight + 6.25*height - 5*age - 161
//	other:  10*weight + 6.25*height - 5*age - 78
//
// The offset for sex=other is the midpoint of the male and female
// constants, (+5 + -161) / 2 = -78.
func (s *CalorieService) CalculateBMR(weightKg, heightCm float64, ageYears int, sex types.Sex) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidInput, weightKg)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidInput, heightCm)
	}
	if ageYears <= 0 {
		return 0, fmt.Errorf("%w: age must be positive, got %d", ErrInvalidInput, ageYears)
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)

	switch sex {
	case types.SexMale:
		return base + 5, nil
	case types.SexFemale:
		return base - 161, nil
	case types.SexOther:
		return base - 78, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized sex %q", ErrInvalidInput, sex)
	}
}

// CalculateTDEE computes total daily energy expenditure in kcal/day.
func (s *CalorieService) CalculateTDEE(bmr float64, activityLevel types.ActivityLevel) (float64, error) {
	factor, ok := ActivityFactors[activityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized activity level %q", ErrInvalidInput, activityLevel)
	}
	return bmr * factor, nil
}

// CalculateTargetCalories adjusts TDEE for the stated goal, rounding to
// the nearest whole kcal. A deficit is clamped at MinSafeCalories.
func (s *CalorieService) CalculateTargetCalories(tdee float64, goal types.Goal) (int, error) {
	var target float64
	switch goal {
	case types.GoalLose:
		target = tdee - CalorieAdjustment
	case types.GoalMaintain:
		target = tdee
	case types.GoalGain:
		target = tdee + CalorieAdjustment
	default:
		return 0, fmt.Errorf("%w: unrecognized goal %q", ErrInvalidInput, goal)
	}

	calories := int(math.Round(target))
	if goal == types.GoalLose && calories < MinSafeCalories {
		calories = MinSafeCalories
	}
	return calories, nil
}

// CalculateMacroTargets splits the calorie target into macronutrient
// gram targets using the per-goal allocation table.
func (s *CalorieService) CalculateMacroTargets(targetCalories int, goal types.Goal) (types.MacroTargets, error) {
	split, ok := MacroSplits[goal]
	if !ok {
		return types.MacroTargets{}, fmt.Errorf("%w: unrecognized goal %q", ErrInvalidInput, goal)
	}

	grams := func(percent, caloriesPerGram int) int {
		return int(math.Round(float64(targetCalories) * float64(percent) / 100 / float64(caloriesPerGram)))
	}

	return types.MacroTargets{
		Carbs: types.MacroTarget{
			Grams:             grams(split.CarbsPercent, CaloriesPerGramCarbs),
			PercentOfCalories: split.CarbsPercent,
		},
		Protein: types.MacroTarget{
			Grams:             grams(split.ProteinPercent, CaloriesPerGramProtein),
			PercentOfCalories: split.ProteinPercent,
		},
		Fat: types.MacroTarget{
			Grams:             grams(split.FatPercent, CaloriesPerGramFat),
			PercentOfCalories: split.FatPercent,
		},
	}, nil
}

// CalculateTargets runs the full pipeline: BMR, TDEE, target calories
// and macro split.
func (s *CalorieService) CalculateTargets(profile types.BiometricProfile) (types.EnergyTargets, error) {
	bmr, err := s.CalculateBMR(profile.Weight, profile.Height, profile.Age, profile.Sex)
	if err != nil {
		return types.EnergyTargets{}, err
	}

	tdee, err := s.CalculateTDEE(bmr, profile.ActivityLevel)
	if err != nil {
		return types.EnergyTargets{}, err
	}

	targetCalories, err := s.CalculateTargetCalories(tdee, profile.Goal)
	if err != nil {
		return types.EnergyTargets{}, err
	}

	macros, err := s.CalculateMacroTargets(targetCalories, profile.Goal)
	if err != nil {
		return types.EnergyTargets{}, err
	}

	return types.EnergyTargets{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: targetCalories,
		MacroTargets:   macros,
	}, nil
}

// CalculateBMI computes the body mass index, rounded to one decimal.
func (s *CalorieService) CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// BMICategory classifies a BMI value.
func (s *CalorieService) BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// IdealWeightRange computes the weight range spanning BMI 18.5-24.9 for
// the given height.
func (s *CalorieService) IdealWeightRange(heightCm float64) (min, max float64) {
	heightM := heightCm / 100
	min = math.Round(18.5 * heightM * heightM)
	max = math.Round(24.9 * heightM * heightM)
	return min, max
}

// WaterIntake recommends daily water in liters: 33 ml per kg of body
// weight, scaled up with activity level.
func (s *CalorieService) WaterIntake(weightKg float64, activityLevel types.ActivityLevel) float64 {
	base := weightKg * 0.033

	multiplier := 1.0
	switch activityLevel {
	case types.ActivityLight:
		multiplier = 1.1
	case types.ActivityModerate:
		multiplier = 1.2
	case types.ActivityVery:
		multiplier = 1.3
	case types.ActivityExtreme:
		multiplier = 1.4
	}

	return math.Round(base*multiplier*10) / 10
}

// metValues maps exercise types to their metabolic equivalents.
var metValues = map[string]float64{
	"walking":    3.5,
	"jogging":    7.0,
	"running":    10.0,
	"cycling":    8.0,
	"swimming":   8.0,
	"yoga":       3.0,
	"strength":   6.0,
	"dancing":    5.0,
	"hiking":     6.0,
	"basketball": 8.0,
	"tennis":     7.0,
	"soccer":     10.0,
}

// CaloriesBurned estimates calories burned for an exercise session using
// MET values. Unknown activities fall back to MET 4.0.
func (s *CalorieService) CaloriesBurned(weightKg float64, activityType string, durationMin int) int {
	met := 4.0
	if v, ok := metValues[activityType]; ok {
		met = v
	}
	perMinute := (met * weightKg * 3.5) / 200
	return int(math.Round(perMinute * float64(durationMin)))
}

// WeightChangeTimeline estimates how long reaching the goal weight takes
// at the given weekly calorie change, assuming ~7700 kcal per kg. A safe
// rate is 0.25-1 kg per week.
func (s *CalorieService) WeightChangeTimeline(currentKg, targetKg float64, weeklyCalorieChange int) (weeks int, months float64, safeRate bool) {
	const caloriesPerKg = 7700.0

	diff := math.Abs(targetKg - currentKg)
	totalCalories := diff * caloriesPerKg

	weeks = int(math.Ceil(totalCalories / math.Abs(float64(weeklyCalorieChange))))
	months = math.Round(float64(weeks)/4.33*10) / 10

	weeklyKg := math.Abs(float64(weeklyCalorieChange)) / caloriesPerKg
	safeRate = weeklyKg >= 0.25 && weeklyKg <= 1.0

	return weeks, months, safeRate
}
