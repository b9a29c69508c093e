package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fytai-health-api/internal/domain"
)

const (
	// weakCategoryThreshold selects categories for recommendation keys.
	// The exercise recommender uses its own, different threshold; the two
	// are deliberately distinct constants.
	weakCategoryThreshold = 60

	// maxCategoryRecommendations caps the weakest-category keys appended
	// after the two level keys.
	maxCategoryRecommendations = 3

	// moderateRiskPointsCeiling: moderate-risk options only become risk
	// factors when the answer also scored below this value.
	moderateRiskPointsCeiling = 5
)

const highRiskWarningKey = "HEALTH.RECOMMENDATIONS.HIGH_RISK_WARNING"

// ScoreService computes questionnaire results from answer sets. It holds
// no mutable state: the catalog is read-only and each call receives its
// own answers, so a single instance is safe for concurrent use.
type ScoreService struct {
	catalog *domain.Catalog
	now     func() time.Time
}

// NewScoreService creates a ScoreService over the given catalog.
func NewScoreService(catalog *domain.Catalog) *ScoreService {
	return &ScoreService{
		catalog: catalog,
		now:     time.Now,
	}
}

// Questions returns the full ordered question sequence.
func (s *ScoreService) Questions() []domain.Question {
	return s.catalog.Questions()
}

// QuestionsByCategory returns the catalog grouped by category.
func (s *ScoreService) QuestionsByCategory() map[domain.Category][]domain.Question {
	return s.catalog.GroupedQuestions()
}

// Catalog returns the catalog the service scores against.
func (s *ScoreService) Catalog() *domain.Catalog {
	return s.catalog
}

// CalculateResults computes the full result for an answer set. Partial
// answer sets are scored as-is: the max possible score always covers the
// whole catalog, so missing answers lower the percentage rather than
// rescaling it. Answers referencing unknown questions contribute nothing.
func (s *ScoreService) CalculateResults(answers []domain.Answer) *domain.Result {
	categoryScores := s.calculateCategoryScores(answers)
	totalScore := s.calculateTotalScore(answers)
	maxPossibleScore := s.catalog.MaxPossibleScore()
	scorePercentage := roundPercentage(totalScore, maxPossibleScore)
	healthLevel := domain.LevelForPercentage(scorePercentage)
	riskFactors := s.identifyRiskFactors(answers)
	recommendations := s.generateRecommendations(healthLevel, categoryScores, riskFactors)

	return &domain.Result{
		Answers:          answers,
		TotalScore:       totalScore,
		MaxPossibleScore: maxPossibleScore,
		ScorePercentage:  scorePercentage,
		HealthLevel:      healthLevel,
		CategoryScores:   categoryScores,
		RiskFactors:      riskFactors,
		Recommendations:  recommendations,
		CompletedAt:      s.now(),
	}
}

// GetPointsForAnswer resolves the points of the option matching value for
// the given question. Returns 0 when the question or option is unknown.
// The answer collector calls this at selection time; scoring later trusts
// the stored points rather than re-deriving them.
func (s *ScoreService) GetPointsForAnswer(questionID string, value domain.AnswerValue) int {
	question := s.catalog.QuestionByID(questionID)
	if question == nil {
		return 0
	}
	option := question.OptionForValue(value)
	if option == nil {
		return 0
	}
	return option.Points
}

// calculateTotalScore sums points times weight over the given answers.
func (s *ScoreService) calculateTotalScore(answers []domain.Answer) int {
	total := 0
	for _, answer := range answers {
		question := s.catalog.QuestionByID(answer.QuestionID)
		if question == nil {
			continue
		}
		total += answer.Points * question.Weight
	}
	return total
}

// calculateCategoryScores aggregates per category over the fixed
// enumeration. The max score counts every catalog question of the
// category, answered or not; categories with no questions are excluded
// from the output entirely.
func (s *ScoreService) calculateCategoryScores(answers []domain.Answer) []domain.CategoryScore {
	answersByQuestion := make(map[string]domain.Answer, len(answers))
	for _, a := range answers {
		answersByQuestion[a.QuestionID] = a
	}

	var scores []domain.CategoryScore
	for _, category := range domain.Categories() {
		score := 0
		maxScore := 0
		for _, question := range s.catalog.QuestionsByCategory(category) {
			maxScore += question.MaxPoints() * question.Weight
			if answer, ok := answersByQuestion[question.ID]; ok {
				score += answer.Points * question.Weight
			}
		}
		if maxScore == 0 {
			continue
		}
		scores = append(scores, domain.CategoryScore{
			Category:   category,
			Score:      score,
			MaxScore:   maxScore,
			Percentage: roundPercentage(score, maxScore),
		})
	}
	return scores
}

// identifyRiskFactors flags concerning answers in answer iteration order.
// High-risk options are always flagged; moderate-risk options only when
// the answer also scored below the points ceiling.
func (s *ScoreService) identifyRiskFactors(answers []domain.Answer) []domain.RiskFactor {
	var riskFactors []domain.RiskFactor
	for _, answer := range answers {
		question := s.catalog.QuestionByID(answer.QuestionID)
		if question == nil {
			continue
		}
		option := question.OptionForValue(answer.Value)
		if option == nil {
			continue
		}

		switch {
		case option.RiskLevel == domain.RiskHigh:
			riskFactors = append(riskFactors, domain.RiskFactor{
				ID:                "risk-" + question.ID,
				Description:       riskDescription(question.ID),
				Severity:          domain.RiskHigh,
				RelatedQuestionID: question.ID,
			})
		case option.RiskLevel == domain.RiskModerate && option.Points < moderateRiskPointsCeiling:
			riskFactors = append(riskFactors, domain.RiskFactor{
				ID:                "risk-" + question.ID,
				Description:       riskDescription(question.ID),
				Severity:          domain.RiskModerate,
				RelatedQuestionID: question.ID,
			})
		}
	}
	return riskFactors
}

// generateRecommendations emits 2 level keys, then one key per weak
// category (ascending percentage, capped), then the high-risk warning if
// any high-severity factor was flagged. Length therefore varies from 2
// to 6 entries.
func (s *ScoreService) generateRecommendations(
	healthLevel domain.Level,
	categoryScores []domain.CategoryScore,
	riskFactors []domain.RiskFactor,
) []string {
	recommendations := []string{
		fmt.Sprintf("HEALTH.RECOMMENDATIONS.LEVEL.%s.1", healthLevel),
		fmt.Sprintf("HEALTH.RECOMMENDATIONS.LEVEL.%s.2", healthLevel),
	}

	var weak []domain.CategoryScore
	for _, cs := range categoryScores {
		if cs.Percentage < weakCategoryThreshold {
			weak = append(weak, cs)
		}
	}
	// weakest first; stable so ties keep reporting order
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Percentage < weak[j].Percentage
	})
	if len(weak) > maxCategoryRecommendations {
		weak = weak[:maxCategoryRecommendations]
	}
	for _, cs := range weak {
		recommendations = append(recommendations, categoryRecommendation(cs.Category))
	}

	for _, rf := range riskFactors {
		if rf.Severity == domain.RiskHigh {
			recommendations = append(recommendations, highRiskWarningKey)
			break
		}
	}

	return recommendations
}

// roundPercentage rounds score/max*100 half away from zero; with
// non-negative scores that is round-half-up. Returns 0 when max is 0.
func roundPercentage(score, max int) int {
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * 100))
}

var riskDescriptions = map[string]string{
	"cardio-1":    "HEALTH.RISK_DESCRIPTIONS.cardio-1",
	"cardio-2":    "HEALTH.RISK_DESCRIPTIONS.cardio-2",
	"cardio-3":    "HEALTH.RISK_DESCRIPTIONS.cardio-3",
	"cardio-4":    "HEALTH.RISK_DESCRIPTIONS.cardio-4",
	"cardio-5":    "HEALTH.RISK_DESCRIPTIONS.cardio-5",
	"musculo-1":   "HEALTH.RISK_DESCRIPTIONS.musculo-1",
	"musculo-2":   "HEALTH.RISK_DESCRIPTIONS.musculo-2",
	"musculo-3":   "HEALTH.RISK_DESCRIPTIONS.musculo-3",
	"metabolic-1": "HEALTH.RISK_DESCRIPTIONS.metabolic-1",
	"metabolic-2": "HEALTH.RISK_DESCRIPTIONS.metabolic-2",
	"lifestyle-1": "HEALTH.RISK_DESCRIPTIONS.lifestyle-1",
	"lifestyle-2": "HEALTH.RISK_DESCRIPTIONS.lifestyle-2",
	"lifestyle-3": "HEALTH.RISK_DESCRIPTIONS.lifestyle-3",
	"activity-1":  "HEALTH.RISK_DESCRIPTIONS.activity-1",
	"activity-2":  "HEALTH.RISK_DESCRIPTIONS.activity-2",
	"activity-3":  "HEALTH.RISK_DESCRIPTIONS.activity-3",
	"activity-4":  "HEALTH.RISK_DESCRIPTIONS.activity-4",
	"mental-1":    "HEALTH.RISK_DESCRIPTIONS.mental-1",
	"mental-2":    "HEALTH.RISK_DESCRIPTIONS.mental-2",
	"mental-3":    "HEALTH.RISK_DESCRIPTIONS.mental-3",
}

// riskDescription returns the classification key for a flagged question.
func riskDescription(questionID string) string {
	if desc, ok := riskDescriptions[questionID]; ok {
		return desc
	}
	return "HEALTH.RISK_DESCRIPTIONS.default"
}

// categoryRecommendation returns the recommendation key for a weak category.
func categoryRecommendation(category domain.Category) string {
	return fmt.Sprintf("HEALTH.RECOMMENDATIONS.CATEGORY.%s", category)
}
