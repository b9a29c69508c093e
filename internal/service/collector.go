package service

import (
	"math"

	"fytai-health-api/internal/domain"
)

// AnswerCollector accumulates one answer per question as the user moves
// through the questionnaire. Setting an answer for an already-answered
// question replaces it in place, preserving first-set order. The scoring
// engine assumes at most one answer per question; this collector is where
// that invariant is enforced.
//
// A collector belongs to a single questionnaire session and is not safe
// for concurrent use.
type AnswerCollector struct {
	catalog *domain.Catalog
	order   []string
	byID    map[string]domain.Answer
}

// NewAnswerCollector creates an empty collector over the catalog.
func NewAnswerCollector(catalog *domain.Catalog) *AnswerCollector {
	return &AnswerCollector{
		catalog: catalog,
		byID:    make(map[string]domain.Answer),
	}
}

// Set records or replaces the answer for a question.
func (c *AnswerCollector) Set(answer domain.Answer) error {
	if err := answer.Validate(); err != nil {
		return err
	}
	if c.catalog.QuestionByID(answer.QuestionID) == nil {
		return domain.NewQuestionNotFoundError(answer.QuestionID)
	}
	if _, exists := c.byID[answer.QuestionID]; !exists {
		c.order = append(c.order, answer.QuestionID)
	}
	c.byID[answer.QuestionID] = answer
	return nil
}

// Get returns the recorded answer for a question, if any.
func (c *AnswerCollector) Get(questionID string) (domain.Answer, bool) {
	a, ok := c.byID[questionID]
	return a, ok
}

// Answers returns the recorded answers in first-set order.
func (c *AnswerCollector) Answers() []domain.Answer {
	out := make([]domain.Answer, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// TotalQuestions returns the catalog question count.
func (c *AnswerCollector) TotalQuestions() int {
	return c.catalog.Len()
}

// AnsweredCount returns the number of answered questions.
func (c *AnswerCollector) AnsweredCount() int {
	return len(c.byID)
}

// PercentComplete returns the answered share of the catalog, rounded.
func (c *AnswerCollector) PercentComplete() int {
	total := c.catalog.Len()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(len(c.byID)) / float64(total) * 100))
}

// MissingRequired returns the required questions with no answer yet, in
// catalog order. Submission is gated on this being empty.
func (c *AnswerCollector) MissingRequired() []string {
	var missing []string
	for _, id := range c.catalog.RequiredQuestionIDs() {
		if _, ok := c.byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Complete reports whether every required question has an answer.
func (c *AnswerCollector) Complete() bool {
	return len(c.MissingRequired()) == 0
}

// Reset clears all recorded answers.
func (c *AnswerCollector) Reset() {
	c.order = nil
	c.byID = make(map[string]domain.Answer)
}
