package dto

import (
	"time"

	"fytai-health-api/internal/domain"
)

// OptionResponse is one selectable answer in the API response
type OptionResponse struct {
	Value     domain.AnswerValue `json:"value"`
	Label     string             `json:"label"`
	Points    int                `json:"points"`
	RiskLevel string             `json:"riskLevel,omitempty"`
}

// QuestionResponse represents a catalog question in the API response
// @Description Questionnaire question with its options
type QuestionResponse struct {
	ID       string           `json:"id"`
	Category string           `json:"category"`
	Text     string           `json:"text"`
	Type     string           `json:"type"`
	Options  []OptionResponse `json:"options,omitempty"`
	Weight   int              `json:"weight"`
	Required bool             `json:"required"`
}

// CategoryQuestionsResponse groups questions under one category,
// preserving catalog order.
type CategoryQuestionsResponse struct {
	Category  string             `json:"category"`
	Label     string             `json:"label"`
	Questions []QuestionResponse `json:"questions"`
}

// PointsRequest resolves the points of a selected option at answer time.
type PointsRequest struct {
	QuestionID string             `json:"questionId"`
	Value      domain.AnswerValue `json:"value"`
}

// PointsResponse carries the resolved points for a selection.
type PointsResponse struct {
	QuestionID string             `json:"questionId"`
	Value      domain.AnswerValue `json:"value"`
	Points     int                `json:"points"`
}

// AnswerRequest is one answer in a submission. Points are resolved
// server-side from the catalog; the stored value is what gets scored.
type AnswerRequest struct {
	QuestionID string             `json:"questionId"`
	Value      domain.AnswerValue `json:"value"`
}

// SubmitAnswersRequest represents a full questionnaire submission
// @Description Request body for scoring an answer set
type SubmitAnswersRequest struct {
	Answers []AnswerRequest `json:"answers"`
	// Partial skips the required-question completeness gate.
	Partial bool `json:"partial,omitempty"`
}

// AnswerResponse echoes one scored answer.
type AnswerResponse struct {
	QuestionID string             `json:"questionId"`
	Value      domain.AnswerValue `json:"value"`
	Points     int                `json:"points"`
}

// CategoryScoreResponse is the per-category aggregation in the response.
type CategoryScoreResponse struct {
	Category   string `json:"category"`
	Label      string `json:"label"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	Percentage int    `json:"percentage"`
}

// RiskFactorResponse flags one concerning answer.
type RiskFactorResponse struct {
	ID                string `json:"id"`
	Description       string `json:"description"`
	Severity          string `json:"severity"`
	RelatedQuestionID string `json:"relatedQuestionId"`
}

// ResultResponse represents a computed questionnaire result
// @Description Full health assessment result
type ResultResponse struct {
	Answers          []AnswerResponse        `json:"answers"`
	TotalScore       int                     `json:"totalScore"`
	MaxPossibleScore int                     `json:"maxPossibleScore"`
	ScorePercentage  int                     `json:"scorePercentage"`
	HealthLevel      string                  `json:"healthLevel"`
	HealthLevelLabel string                  `json:"healthLevelLabel"`
	CategoryScores   []CategoryScoreResponse `json:"categoryScores"`
	RiskFactors      []RiskFactorResponse    `json:"riskFactors"`
	Recommendations  []string                `json:"recommendations"`
	CompletedAt      time.Time               `json:"completedAt"`
}

// NewResultResponse maps a domain result to its API shape.
func NewResultResponse(result *domain.Result) *ResultResponse {
	answers := make([]AnswerResponse, 0, len(result.Answers))
	for _, a := range result.Answers {
		answers = append(answers, AnswerResponse{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Points:     a.Points,
		})
	}

	categoryScores := make([]CategoryScoreResponse, 0, len(result.CategoryScores))
	for _, cs := range result.CategoryScores {
		categoryScores = append(categoryScores, CategoryScoreResponse{
			Category:   string(cs.Category),
			Label:      cs.Category.Label(),
			Score:      cs.Score,
			MaxScore:   cs.MaxScore,
			Percentage: cs.Percentage,
		})
	}

	riskFactors := make([]RiskFactorResponse, 0, len(result.RiskFactors))
	for _, rf := range result.RiskFactors {
		riskFactors = append(riskFactors, RiskFactorResponse{
			ID:                rf.ID,
			Description:       rf.Description,
			Severity:          string(rf.Severity),
			RelatedQuestionID: rf.RelatedQuestionID,
		})
	}

	return &ResultResponse{
		Answers:          answers,
		TotalScore:       result.TotalScore,
		MaxPossibleScore: result.MaxPossibleScore,
		ScorePercentage:  result.ScorePercentage,
		HealthLevel:      string(result.HealthLevel),
		HealthLevelLabel: result.HealthLevel.Label(),
		CategoryScores:   categoryScores,
		RiskFactors:      riskFactors,
		Recommendations:  result.Recommendations,
		CompletedAt:      result.CompletedAt,
	}
}

// RecentResultResponse reports whether a fresh result exists.
type RecentResultResponse struct {
	HasRecent bool `json:"hasRecent"`
}

// ArchivedResultResponse is one saved assessment in the archive list.
type ArchivedResultResponse struct {
	ID      string          `json:"id"`
	SavedAt time.Time       `json:"savedAt"`
	Result  *ResultResponse `json:"result"`
}

// ExerciseResponse is one suggested activity.
type ExerciseResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Intensity   string `json:"intensity"`
	Duration    string `json:"duration,omitempty"`
	Repetitions string `json:"repetitions,omitempty"`
}

// ExerciseProgramResponse is the weekly program shell for a result.
type ExerciseProgramResponse struct {
	Level        string             `json:"level"`
	DaysPerWeek  int                `json:"daysPerWeek"`
	WeeklyFocus  []string           `json:"weeklyFocus"`
	Exercises    []ExerciseResponse `json:"exercises"`
	CautionNotes []string           `json:"cautionNotes,omitempty"`
}

// NewExerciseResponse maps a domain exercise to its API shape.
func NewExerciseResponse(e domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		Name:        e.Name,
		Description: e.Description,
		Category:    string(e.Category),
		Intensity:   string(e.Intensity),
		Duration:    e.Duration,
		Repetitions: e.Repetitions,
	}
}

// ChatTurnRequest is one prior exchange in the advice conversation.
type ChatTurnRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest asks the AI advisor a question about the latest result
// @Description Request body for the health advice chat
type ChatRequest struct {
	Message  string            `json:"message"`
	Language string            `json:"language,omitempty"`
	History  []ChatTurnRequest `json:"history,omitempty"`
}

// ChatResponse carries the advisor's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
