package service

import (
	"fytai-health-api/internal/domain"
)

// exerciseWeakCategoryThreshold selects the categories an exercise plan
// should target. It is intentionally looser than the scoring engine's
// recommendation threshold and must not be unified with it.
const exerciseWeakCategoryThreshold = 70

// ExerciseService maps a questionnaire result to concrete exercise
// suggestions: it reads the health level and the categories scoring
// below the threshold, nothing else from the result.
type ExerciseService struct{}

// NewExerciseService creates an ExerciseService.
func NewExerciseService() *ExerciseService {
	return &ExerciseService{}
}

// RecommendedExercises returns exercises for the result's weak
// categories, filtered to intensities allowed at the result's health
// level. Weak categories are visited in reporting order; with no weak
// category, a general maintenance selection is returned.
func (s *ExerciseService) RecommendedExercises(result *domain.Result) []domain.Exercise {
	allowed := allowedIntensities(result.HealthLevel)

	weak := result.WeakCategories(exerciseWeakCategoryThreshold)
	if len(weak) == 0 {
		return filterByIntensity(maintenanceExercises, allowed)
	}

	var out []domain.Exercise
	for _, cs := range weak {
		out = append(out, filterByIntensity(exercisesByCategory[cs.Category], allowed)...)
	}
	return out
}

// Program builds a weekly program shell sized by the health level around
// the recommended exercises.
func (s *ExerciseService) Program(result *domain.Result) *domain.ExerciseProgram {
	program := &domain.ExerciseProgram{
		Level:       result.HealthLevel,
		DaysPerWeek: daysPerWeek(result.HealthLevel),
		Exercises:   s.RecommendedExercises(result),
	}
	for _, cs := range result.WeakCategories(exerciseWeakCategoryThreshold) {
		program.WeeklyFocus = append(program.WeeklyFocus, cs.Category)
	}
	if len(result.HighRiskFactors()) > 0 {
		program.CautionNotes = append(program.CautionNotes, "HEALTH.RECOMMENDATIONS.HIGH_RISK_WARNING")
	}
	return program
}

func daysPerWeek(level domain.Level) int {
	switch level {
	case domain.LevelExcellent:
		return 5
	case domain.LevelGood:
		return 4
	case domain.LevelModerate:
		return 3
	case domain.LevelNeedsImprovement:
		return 2
	default:
		return 1
	}
}

// allowedIntensities limits exercise intensity by health level: at-risk
// users only see beginner movements, excellent users see everything.
func allowedIntensities(level domain.Level) map[domain.Intensity]bool {
	switch level {
	case domain.LevelExcellent, domain.LevelGood:
		return map[domain.Intensity]bool{
			domain.IntensityBeginner:     true,
			domain.IntensityIntermediate: true,
			domain.IntensityAdvanced:     true,
		}
	case domain.LevelModerate, domain.LevelNeedsImprovement:
		return map[domain.Intensity]bool{
			domain.IntensityBeginner:     true,
			domain.IntensityIntermediate: true,
		}
	default:
		return map[domain.Intensity]bool{
			domain.IntensityBeginner: true,
		}
	}
}

func filterByIntensity(exercises []domain.Exercise, allowed map[domain.Intensity]bool) []domain.Exercise {
	var out []domain.Exercise
	for _, e := range exercises {
		if allowed[e.Intensity] {
			out = append(out, e)
		}
	}
	return out
}

// Static exercise table. Names and descriptions are translation keys.
var exercisesByCategory = map[domain.Category][]domain.Exercise{
	domain.CategoryCardiovascular: {
		{Name: "EXERCISES.walking.NAME", Description: "EXERCISES.walking.DESC", Category: domain.CategoryCardiovascular, Intensity: domain.IntensityBeginner, Duration: "30min"},
		{Name: "EXERCISES.cycling.NAME", Description: "EXERCISES.cycling.DESC", Category: domain.CategoryCardiovascular, Intensity: domain.IntensityIntermediate, Duration: "45min"},
		{Name: "EXERCISES.running.NAME", Description: "EXERCISES.running.DESC", Category: domain.CategoryCardiovascular, Intensity: domain.IntensityAdvanced, Duration: "30min"},
	},
	domain.CategoryMusculoskeletal: {
		{Name: "EXERCISES.stretching.NAME", Description: "EXERCISES.stretching.DESC", Category: domain.CategoryMusculoskeletal, Intensity: domain.IntensityBeginner, Duration: "15min"},
		{Name: "EXERCISES.bodyweight.NAME", Description: "EXERCISES.bodyweight.DESC", Category: domain.CategoryMusculoskeletal, Intensity: domain.IntensityIntermediate, Repetitions: "3x12"},
		{Name: "EXERCISES.weight-training.NAME", Description: "EXERCISES.weight-training.DESC", Category: domain.CategoryMusculoskeletal, Intensity: domain.IntensityAdvanced, Repetitions: "4x8"},
	},
	domain.CategoryRespiratory: {
		{Name: "EXERCISES.breathing.NAME", Description: "EXERCISES.breathing.DESC", Category: domain.CategoryRespiratory, Intensity: domain.IntensityBeginner, Duration: "10min"},
		{Name: "EXERCISES.swimming.NAME", Description: "EXERCISES.swimming.DESC", Category: domain.CategoryRespiratory, Intensity: domain.IntensityIntermediate, Duration: "30min"},
	},
	domain.CategoryMetabolic: {
		{Name: "EXERCISES.brisk-walking.NAME", Description: "EXERCISES.brisk-walking.DESC", Category: domain.CategoryMetabolic, Intensity: domain.IntensityBeginner, Duration: "30min"},
		{Name: "EXERCISES.interval-training.NAME", Description: "EXERCISES.interval-training.DESC", Category: domain.CategoryMetabolic, Intensity: domain.IntensityAdvanced, Duration: "20min"},
	},
	domain.CategoryLifestyle: {
		{Name: "EXERCISES.yoga.NAME", Description: "EXERCISES.yoga.DESC", Category: domain.CategoryLifestyle, Intensity: domain.IntensityBeginner, Duration: "30min"},
		{Name: "EXERCISES.pilates.NAME", Description: "EXERCISES.pilates.DESC", Category: domain.CategoryLifestyle, Intensity: domain.IntensityIntermediate, Duration: "45min"},
	},
	domain.CategoryPhysicalActivity: {
		{Name: "EXERCISES.daily-walk.NAME", Description: "EXERCISES.daily-walk.DESC", Category: domain.CategoryPhysicalActivity, Intensity: domain.IntensityBeginner, Duration: "20min"},
		{Name: "EXERCISES.team-sport.NAME", Description: "EXERCISES.team-sport.DESC", Category: domain.CategoryPhysicalActivity, Intensity: domain.IntensityIntermediate, Duration: "60min"},
		{Name: "EXERCISES.crossfit.NAME", Description: "EXERCISES.crossfit.DESC", Category: domain.CategoryPhysicalActivity, Intensity: domain.IntensityAdvanced, Duration: "45min"},
	},
	domain.CategoryMentalHealth: {
		{Name: "EXERCISES.meditation.NAME", Description: "EXERCISES.meditation.DESC", Category: domain.CategoryMentalHealth, Intensity: domain.IntensityBeginner, Duration: "15min"},
		{Name: "EXERCISES.tai-chi.NAME", Description: "EXERCISES.tai-chi.DESC", Category: domain.CategoryMentalHealth, Intensity: domain.IntensityIntermediate, Duration: "30min"},
	},
}

var maintenanceExercises = []domain.Exercise{
	{Name: "EXERCISES.daily-walk.NAME", Description: "EXERCISES.daily-walk.DESC", Category: domain.CategoryPhysicalActivity, Intensity: domain.IntensityBeginner, Duration: "20min"},
	{Name: "EXERCISES.cycling.NAME", Description: "EXERCISES.cycling.DESC", Category: domain.CategoryCardiovascular, Intensity: domain.IntensityIntermediate, Duration: "45min"},
	{Name: "EXERCISES.bodyweight.NAME", Description: "EXERCISES.bodyweight.DESC", Category: domain.CategoryMusculoskeletal, Intensity: domain.IntensityIntermediate, Repetitions: "3x12"},
	{Name: "EXERCISES.running.NAME", Description: "EXERCISES.running.DESC", Category: domain.CategoryCardiovascular, Intensity: domain.IntensityAdvanced, Duration: "30min"},
}
