package domain

import "time"

// Category is one of the seven fixed health domains used to group
// questions and aggregate sub-scores.
type Category string

const (
	CategoryCardiovascular   Category = "cardiovascular"
	CategoryMusculoskeletal  Category = "musculoskeletal"
	CategoryRespiratory      Category = "respiratory"
	CategoryMetabolic        Category = "metabolic"
	CategoryLifestyle        Category = "lifestyle"
	CategoryPhysicalActivity Category = "physical-activity"
	CategoryMentalHealth     Category = "mental-health"
)

// Categories returns the fixed category enumeration in presentation order.
// Category scores are always reported in this order.
func Categories() []Category {
	return []Category{
		CategoryCardiovascular,
		CategoryMusculoskeletal,
		CategoryRespiratory,
		CategoryMetabolic,
		CategoryLifestyle,
		CategoryPhysicalActivity,
		CategoryMentalHealth,
	}
}

// IsValid reports whether c is one of the seven fixed categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCardiovascular, CategoryMusculoskeletal, CategoryRespiratory,
		CategoryMetabolic, CategoryLifestyle, CategoryPhysicalActivity, CategoryMentalHealth:
		return true
	}
	return false
}

// Label returns the translation key for a category; the SPA translates it.
func (c Category) Label() string {
	labels := map[Category]string{
		CategoryCardiovascular:   "HEALTH.CATEGORY_CARDIOVASCULAR",
		CategoryMusculoskeletal:  "HEALTH.CATEGORY_MUSCULOSKELETAL",
		CategoryRespiratory:      "HEALTH.CATEGORY_RESPIRATORY",
		CategoryMetabolic:        "HEALTH.CATEGORY_METABOLIC",
		CategoryLifestyle:        "HEALTH.CATEGORY_LIFESTYLE",
		CategoryPhysicalActivity: "HEALTH.CATEGORY_PHYSICAL_ACTIVITY",
		CategoryMentalHealth:     "HEALTH.CATEGORY_MENTAL_HEALTH",
	}
	return labels[c]
}

// Level is the five-tier health classification derived from the overall
// score percentage.
type Level string

const (
	LevelExcellent        Level = "excellent"         // 90-100%
	LevelGood             Level = "good"              // 75-89%
	LevelModerate         Level = "moderate"          // 60-74%
	LevelNeedsImprovement Level = "needs-improvement" // 40-59%
	LevelAtRisk           Level = "at-risk"           // 0-39%
)

// LevelForPercentage classifies a score percentage. Lower bounds are inclusive.
func LevelForPercentage(percentage int) Level {
	switch {
	case percentage >= 90:
		return LevelExcellent
	case percentage >= 75:
		return LevelGood
	case percentage >= 60:
		return LevelModerate
	case percentage >= 40:
		return LevelNeedsImprovement
	default:
		return LevelAtRisk
	}
}

// Label returns the translation key for a health level.
func (l Level) Label() string {
	labels := map[Level]string{
		LevelExcellent:        "HEALTH.SCORE_EXCELLENT",
		LevelGood:             "HEALTH.SCORE_GOOD",
		LevelModerate:         "HEALTH.SCORE_MODERATE",
		LevelNeedsImprovement: "HEALTH.SCORE_NEEDS_IMPROVEMENT",
		LevelAtRisk:           "HEALTH.SCORE_AT_RISK",
	}
	return labels[l]
}

// RiskLevel is the risk classification attached to an answer option.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// QuestionType governs which input control applies to a question and which
// AnswerValue variant is valid for it.
type QuestionType string

const (
	QuestionBoolean        QuestionType = "boolean"
	QuestionSingleChoice   QuestionType = "single-choice"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionScale          QuestionType = "scale"
)

// Option is one selectable answer for a question. Points encode how
// favourable the option is; RiskLevel flags clinically concerning picks.
type Option struct {
	Value     AnswerValue `json:"value"`
	Label     string      `json:"label"`
	Points    int         `json:"points"`
	RiskLevel RiskLevel   `json:"riskLevel,omitempty"`
}

// Question is an immutable catalog entry. Weight multiplies the points
// earned on this question when folded into category and overall scores.
type Question struct {
	ID       string       `json:"id"`
	Category Category     `json:"category"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []Option     `json:"options,omitempty"`
	Weight   int          `json:"weight"`
	Required bool         `json:"required"`
}

// defaultMaxPoints is assumed for questions without options (scale type).
const defaultMaxPoints = 10

// MaxPoints returns the highest point value among the question's options,
// or defaultMaxPoints when the question type carries no options.
func (q *Question) MaxPoints() int {
	if len(q.Options) == 0 {
		return defaultMaxPoints
	}
	max := q.Options[0].Points
	for _, o := range q.Options[1:] {
		if o.Points > max {
			max = o.Points
		}
	}
	return max
}

// OptionForValue returns the option matching the given value, or nil.
func (q *Question) OptionForValue(value AnswerValue) *Option {
	for i := range q.Options {
		if q.Options[i].Value.Equal(value) {
			return &q.Options[i]
		}
	}
	return nil
}

// Answer is one user response. Points is the value resolved from the
// matching option at selection time; scoring trusts this stored copy and
// never re-derives it from the catalog.
type Answer struct {
	QuestionID string      `json:"questionId"`
	Value      AnswerValue `json:"value"`
	Points     int         `json:"points"`
}

// Validate validates the answer
func (a *Answer) Validate() error {
	if a.QuestionID == "" {
		return NewInvalidAnswerError("questionId is required")
	}
	if a.Value.Kind == ValueUnset {
		return NewInvalidAnswerError("value is required")
	}
	if a.Points < 0 {
		return NewInvalidAnswerError("points must not be negative")
	}
	return nil
}

// CategoryScore is the per-category aggregation inside a Result.
type CategoryScore struct {
	Category   Category `json:"category"`
	Score      int      `json:"score"`
	MaxScore   int      `json:"maxScore"`
	Percentage int      `json:"percentage"`
}

// RiskFactor flags an answer indicating elevated health risk.
type RiskFactor struct {
	ID                string    `json:"id"`
	Description       string    `json:"description"`
	Severity          RiskLevel `json:"severity"`
	RelatedQuestionID string    `json:"relatedQuestionId"`
}

// Result is the scoring engine's single output. It is created once per
// scoring pass and treated as an immutable value thereafter.
type Result struct {
	Answers          []Answer        `json:"answers"`
	TotalScore       int             `json:"totalScore"`
	MaxPossibleScore int             `json:"maxPossibleScore"`
	ScorePercentage  int             `json:"scorePercentage"`
	HealthLevel      Level           `json:"healthLevel"`
	CategoryScores   []CategoryScore `json:"categoryScores"`
	RiskFactors      []RiskFactor    `json:"riskFactors"`
	Recommendations  []string        `json:"recommendations"`
	CompletedAt      time.Time       `json:"completedAt"`
}

// HighRiskFactors returns the subset of risk factors with high severity.
func (r *Result) HighRiskFactors() []RiskFactor {
	var high []RiskFactor
	for _, rf := range r.RiskFactors {
		if rf.Severity == RiskHigh {
			high = append(high, rf)
		}
	}
	return high
}

// WeakCategories returns the categories scoring strictly below the given
// percentage threshold, in reporting order.
func (r *Result) WeakCategories(threshold int) []CategoryScore {
	var weak []CategoryScore
	for _, cs := range r.CategoryScores {
		if cs.Percentage < threshold {
			weak = append(weak, cs)
		}
	}
	return weak
}
