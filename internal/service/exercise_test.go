package service_test

import (
	"testing"

	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendedExercises_TargetsWeakCategories(t *testing.T) {
	svc := service.NewExerciseService()

	// 69% is weak for the exercise planner even though the scoring
	// engine's recommendation threshold (60) would not flag it.
	result := &domain.Result{
		HealthLevel: domain.LevelGood,
		CategoryScores: []domain.CategoryScore{
			{Category: domain.CategoryCardiovascular, Percentage: 69},
			{Category: domain.CategoryMentalHealth, Percentage: 90},
		},
	}

	exercises := svc.RecommendedExercises(result)
	require.NotEmpty(t, exercises)
	for _, e := range exercises {
		assert.Equal(t, domain.CategoryCardiovascular, e.Category)
	}
}

func TestRecommendedExercises_FiltersIntensityByLevel(t *testing.T) {
	svc := service.NewExerciseService()

	weak := []domain.CategoryScore{
		{Category: domain.CategoryCardiovascular, Percentage: 30},
	}

	atRisk := svc.RecommendedExercises(&domain.Result{HealthLevel: domain.LevelAtRisk, CategoryScores: weak})
	for _, e := range atRisk {
		assert.Equal(t, domain.IntensityBeginner, e.Intensity)
	}

	moderate := svc.RecommendedExercises(&domain.Result{HealthLevel: domain.LevelModerate, CategoryScores: weak})
	for _, e := range moderate {
		assert.NotEqual(t, domain.IntensityAdvanced, e.Intensity)
	}

	excellent := svc.RecommendedExercises(&domain.Result{HealthLevel: domain.LevelExcellent, CategoryScores: weak})
	assert.Greater(t, len(excellent), len(moderate))
}

func TestRecommendedExercises_MaintenanceFallback(t *testing.T) {
	svc := service.NewExerciseService()

	result := &domain.Result{
		HealthLevel: domain.LevelExcellent,
		CategoryScores: []domain.CategoryScore{
			{Category: domain.CategoryCardiovascular, Percentage: 95},
			{Category: domain.CategoryMentalHealth, Percentage: 100},
		},
	}

	exercises := svc.RecommendedExercises(result)
	require.NotEmpty(t, exercises)

	// The maintenance selection spans categories instead of targeting one.
	categories := make(map[domain.Category]bool)
	for _, e := range exercises {
		categories[e.Category] = true
	}
	assert.Greater(t, len(categories), 1)
}

func TestProgram(t *testing.T) {
	svc := service.NewExerciseService()

	result := &domain.Result{
		HealthLevel: domain.LevelNeedsImprovement,
		CategoryScores: []domain.CategoryScore{
			{Category: domain.CategoryCardiovascular, Percentage: 40},
			{Category: domain.CategoryMentalHealth, Percentage: 50},
		},
		RiskFactors: []domain.RiskFactor{
			{ID: "risk-cardio-1", Severity: domain.RiskHigh},
		},
	}

	program := svc.Program(result)
	assert.Equal(t, domain.LevelNeedsImprovement, program.Level)
	assert.Equal(t, 2, program.DaysPerWeek)
	assert.Equal(t, []domain.Category{domain.CategoryCardiovascular, domain.CategoryMentalHealth}, program.WeeklyFocus)
	assert.Contains(t, program.CautionNotes, "HEALTH.RECOMMENDATIONS.HIGH_RISK_WARNING")
	assert.NotEmpty(t, program.Exercises)
}

func TestProgram_DaysPerWeekByLevel(t *testing.T) {
	svc := service.NewExerciseService()

	tests := []struct {
		level domain.Level
		days  int
	}{
		{domain.LevelExcellent, 5},
		{domain.LevelGood, 4},
		{domain.LevelModerate, 3},
		{domain.LevelNeedsImprovement, 2},
		{domain.LevelAtRisk, 1},
	}

	for _, tt := range tests {
		program := svc.Program(&domain.Result{HealthLevel: tt.level})
		assert.Equal(t, tt.days, program.DaysPerWeek, "level %s", tt.level)
	}
}
