package domain

// Intensity grades an exercise suggestion.
type Intensity string

const (
	IntensityBeginner     Intensity = "beginner"
	IntensityIntermediate Intensity = "intermediate"
	IntensityAdvanced     Intensity = "advanced"
)

// Exercise is one suggested activity tied to a health category.
type Exercise struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Intensity   Intensity `json:"intensity"`
	Duration    string    `json:"duration,omitempty"`
	Repetitions string    `json:"repetitions,omitempty"`
}

// ExerciseProgram is a weekly program shell sized by health level.
type ExerciseProgram struct {
	Level        Level      `json:"level"`
	DaysPerWeek  int        `json:"daysPerWeek"`
	WeeklyFocus  []Category `json:"weeklyFocus"`
	Exercises    []Exercise `json:"exercises"`
	CautionNotes []string   `json:"cautionNotes,omitempty"`
}
