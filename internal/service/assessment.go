package service

import (
	"context"
	"errors"
	"time"

	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/dto"
	"fytai-health-api/internal/logger"
	"fytai-health-api/internal/util"

	"go.uber.org/zap"
)

// AssessmentService is the application-facing questionnaire workflow:
// catalog exposure, submission scoring, result persistence, the saved
// archive, exercise programs, PDF export and the advice chat.
type AssessmentService interface {
	Questions() []dto.QuestionResponse
	GroupedQuestions() []dto.CategoryQuestionsResponse
	ResolvePoints(req *dto.PointsRequest) (*dto.PointsResponse, error)
	Submit(ctx context.Context, sessionID string, req *dto.SubmitAnswersRequest) (*dto.ResultResponse, error)
	LatestResult(ctx context.Context, sessionID string) (*dto.ResultResponse, error)
	HasRecentResult(ctx context.Context, sessionID string) (*dto.RecentResultResponse, error)
	ClearLatestResult(ctx context.Context, sessionID string) error
	ArchivedResults(ctx context.Context, sessionID string) ([]dto.ArchivedResultResponse, error)
	DeleteArchivedResult(ctx context.Context, sessionID, id string) error
	ClearArchive(ctx context.Context, sessionID string) error
	ExerciseProgram(ctx context.Context, sessionID string) (*dto.ExerciseProgramResponse, error)
	ExportPDF(ctx context.Context, sessionID string) ([]byte, error)
	Chat(ctx context.Context, sessionID string, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type assessmentServiceImpl struct {
	score     *ScoreService
	store     ResultStoreService
	archive   domain.ResultArchive
	advisor   domain.HealthAdvisor
	exercises *ExerciseService
	pdf       *PDFExportService
	recentAge time.Duration
	now       func() time.Time
}

// NewAssessmentService wires the questionnaire workflow. archive and
// advisor may be nil; the corresponding operations then degrade instead
// of failing the whole service.
func NewAssessmentService(
	score *ScoreService,
	store ResultStoreService,
	archive domain.ResultArchive,
	advisor domain.HealthAdvisor,
	exercises *ExerciseService,
	pdf *PDFExportService,
	recentAge time.Duration,
) AssessmentService {
	return &assessmentServiceImpl{
		score:     score,
		store:     store,
		archive:   archive,
		advisor:   advisor,
		exercises: exercises,
		pdf:       pdf,
		recentAge: recentAge,
		now:       time.Now,
	}
}

func (s *assessmentServiceImpl) Questions() []dto.QuestionResponse {
	questions := s.score.Questions()
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, newQuestionResponse(q))
	}
	return out
}

func (s *assessmentServiceImpl) GroupedQuestions() []dto.CategoryQuestionsResponse {
	grouped := s.score.QuestionsByCategory()
	out := make([]dto.CategoryQuestionsResponse, 0, len(grouped))
	for _, category := range s.score.Catalog().CategoryOrder() {
		questions := grouped[category]
		items := make([]dto.QuestionResponse, 0, len(questions))
		for _, q := range questions {
			items = append(items, newQuestionResponse(q))
		}
		out = append(out, dto.CategoryQuestionsResponse{
			Category:  string(category),
			Label:     category.Label(),
			Questions: items,
		})
	}
	return out
}

// ResolvePoints looks up the catalog points for a selected option. An
// unmatched value resolves to zero points, same as the scorer.
func (s *assessmentServiceImpl) ResolvePoints(req *dto.PointsRequest) (*dto.PointsResponse, error) {
	if s.score.Catalog().QuestionByID(req.QuestionID) == nil {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}
	return &dto.PointsResponse{
		QuestionID: req.QuestionID,
		Value:      req.Value,
		Points:     s.score.GetPointsForAnswer(req.QuestionID, req.Value),
	}, nil
}

// Submit scores a submission and persists the result. Store and archive
// failures are logged but never fail the request; the caller always gets
// the computed result back.
func (s *assessmentServiceImpl) Submit(ctx context.Context, sessionID string, req *dto.SubmitAnswersRequest) (*dto.ResultResponse, error) {
	collector := NewAnswerCollector(s.score.Catalog())

	for _, a := range req.Answers {
		if s.score.Catalog().QuestionByID(a.QuestionID) == nil {
			// Unknown IDs are dropped, matching the scorer.
			logger.Get().Debug("Skipping answer for unknown question",
				zap.String("question_id", a.QuestionID))
			continue
		}
		answer := domain.Answer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Points:     s.score.GetPointsForAnswer(a.QuestionID, a.Value),
		}
		if err := collector.Set(answer); err != nil {
			return nil, err
		}
	}

	if !req.Partial {
		if missing := collector.MissingRequired(); len(missing) > 0 {
			var errs domain.ValidationErrors
			for _, id := range missing {
				errs = append(errs, domain.NewMissingFieldError(id))
			}
			return nil, errs
		}
	}

	result := s.score.CalculateResults(collector.Answers())

	if err := s.store.Save(ctx, sessionID, result); err != nil {
		logger.Get().Warn("Failed to store questionnaire result",
			zap.Error(err), zap.String("session_id", sessionID))
	}

	if s.archive != nil {
		record := &domain.ArchivedResult{
			ID:        util.NewULID(),
			SessionID: sessionID,
			Result:    result,
			SavedAt:   s.now(),
		}
		if err := s.archive.Save(ctx, record); err != nil {
			logger.Get().Warn("Failed to archive questionnaire result",
				zap.Error(err), zap.String("session_id", sessionID))
		}
	}

	return dto.NewResultResponse(result), nil
}

func (s *assessmentServiceImpl) LatestResult(ctx context.Context, sessionID string) (*dto.ResultResponse, error) {
	result, err := s.latest(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return dto.NewResultResponse(result), nil
}

func (s *assessmentServiceImpl) HasRecentResult(ctx context.Context, sessionID string) (*dto.RecentResultResponse, error) {
	hasRecent, err := s.store.HasRecent(ctx, sessionID, s.recentAge)
	if err != nil {
		return nil, err
	}
	return &dto.RecentResultResponse{HasRecent: hasRecent}, nil
}

func (s *assessmentServiceImpl) ClearLatestResult(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

func (s *assessmentServiceImpl) ArchivedResults(ctx context.Context, sessionID string) ([]dto.ArchivedResultResponse, error) {
	if s.archive == nil {
		return []dto.ArchivedResultResponse{}, nil
	}
	records, err := s.archive.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArchivedResultResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ArchivedResultResponse{
			ID:      r.ID,
			SavedAt: r.SavedAt,
			Result:  dto.NewResultResponse(r.Result),
		})
	}
	return out, nil
}

func (s *assessmentServiceImpl) DeleteArchivedResult(ctx context.Context, sessionID, id string) error {
	if s.archive == nil {
		return domain.NewNotFoundError("result archive is not available")
	}
	return s.archive.Delete(ctx, sessionID, id)
}

func (s *assessmentServiceImpl) ClearArchive(ctx context.Context, sessionID string) error {
	if s.archive == nil {
		return nil
	}
	return s.archive.DeleteAll(ctx, sessionID)
}

func (s *assessmentServiceImpl) ExerciseProgram(ctx context.Context, sessionID string) (*dto.ExerciseProgramResponse, error) {
	result, err := s.latest(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	program := s.exercises.Program(result)
	exercises := make([]dto.ExerciseResponse, 0, len(program.Exercises))
	for _, e := range program.Exercises {
		exercises = append(exercises, dto.NewExerciseResponse(e))
	}
	focus := make([]string, 0, len(program.WeeklyFocus))
	for _, c := range program.WeeklyFocus {
		focus = append(focus, string(c))
	}

	return &dto.ExerciseProgramResponse{
		Level:        string(program.Level),
		DaysPerWeek:  program.DaysPerWeek,
		WeeklyFocus:  focus,
		Exercises:    exercises,
		CautionNotes: program.CautionNotes,
	}, nil
}

func (s *assessmentServiceImpl) ExportPDF(ctx context.Context, sessionID string) ([]byte, error) {
	result, err := s.latest(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.pdf.Export(result)
}

func (s *assessmentServiceImpl) Chat(ctx context.Context, sessionID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if s.advisor == nil {
		return nil, domain.NewAdvisorServiceError(errors.New("advisor is not configured"))
	}

	result, err := s.latest(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	weak := result.WeakCategories(weakCategoryThreshold)
	weakLabels := make([]string, 0, len(weak))
	for _, c := range weak {
		weakLabels = append(weakLabels, c.Category.Label())
	}
	risks := make([]string, 0, len(result.RiskFactors))
	for _, rf := range result.RiskFactors {
		risks = append(risks, rf.Description)
	}
	history := make([]domain.ChatTurn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, domain.ChatTurn{Role: turn.Role, Content: turn.Content})
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	reply, err := s.advisor.Advise(ctx, &domain.AdviceContext{
		ScorePercentage: result.ScorePercentage,
		HealthLevel:     result.HealthLevel,
		WeakCategories:  weakLabels,
		RiskFactors:     risks,
		Recommendations: result.Recommendations,
		History:         history,
		UserMessage:     req.Message,
		Language:        language,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{Reply: reply}, nil
}

// latest fetches the stored result, translating a store miss into the
// not-found domain error the HTTP layer maps to 404.
func (s *assessmentServiceImpl) latest(ctx context.Context, sessionID string) (*domain.Result, error) {
	result, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResultNotFound) {
			return nil, domain.NewResultNotFoundError(sessionID)
		}
		return nil, err
	}
	return result, nil
}

func newQuestionResponse(q domain.Question) dto.QuestionResponse {
	options := make([]dto.OptionResponse, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, dto.OptionResponse{
			Value:     o.Value,
			Label:     o.Label,
			Points:    o.Points,
			RiskLevel: string(o.RiskLevel),
		})
	}
	return dto.QuestionResponse{
		ID:       q.ID,
		Category: string(q.Category),
		Text:     q.Text,
		Type:     string(q.Type),
		Options:  options,
		Weight:   q.Weight,
		Required: q.Required,
	}
}
