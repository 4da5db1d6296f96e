package types

// Sex selects the Mifflin-St Jeor constant offset.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ActivityLevel represents how active a user is day to day.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtreme   ActivityLevel = "extreme"
)

// Goal represents the user's weight goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// BiometricProfile is the input to the energy target calculation.
type BiometricProfile struct {
	Age           int           `json:"age" binding:"required,min=18,max=100"`
	Sex           Sex           `json:"sex" binding:"required,oneof=male female other"`
	Height        float64       `json:"height" binding:"required,min=100,max=250"`
	Weight        float64       `json:"weight" binding:"required,min=30,max=300"`
	GoalWeight    *float64      `json:"goal_weight,omitempty" binding:"omitempty,min=30,max=300"`
	ActivityLevel ActivityLevel `json:"activity_level" binding:"required,oneof=sedentary light moderate very extreme"`
	Goal          Goal          `json:"goal" binding:"required,oneof=lose maintain gain"`
}

// MacroTarget is one macronutrient's share of the daily target.
type MacroTarget struct {
	Grams             int `json:"grams"`
	PercentOfCalories int `json:"percent_of_calories"`
}

// MacroTargets holds the per-macro daily targets.
type MacroTargets struct {
	Carbs   MacroTarget `json:"carbs"`
	Protein MacroTarget `json:"protein"`
	Fat     MacroTarget `json:"fat"`
}

// EnergyTargets is the derived output of the calculator. Targets are
// recomputed whenever the profile changes, never mutated in place.
type EnergyTargets struct {
	BMR            float64      `json:"bmr"`
	TDEE           float64      `json:"tdee"`
	TargetCalories int          `json:"target_calories"`
	MacroTargets   MacroTargets `json:"macro_targets"`
}
