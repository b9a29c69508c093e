package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/dto"
	"fytai-health-api/internal/handler"
	"fytai-health-api/internal/middleware"
	"fytai-health-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockAssessmentService
type MockAssessmentService struct {
	QuestionsFunc            func() []dto.QuestionResponse
	GroupedQuestionsFunc     func() []dto.CategoryQuestionsResponse
	ResolvePointsFunc        func(req *dto.PointsRequest) (*dto.PointsResponse, error)
	SubmitFunc               func(ctx context.Context, sessionID string, req *dto.SubmitAnswersRequest) (*dto.ResultResponse, error)
	LatestResultFunc         func(ctx context.Context, sessionID string) (*dto.ResultResponse, error)
	HasRecentResultFunc      func(ctx context.Context, sessionID string) (*dto.RecentResultResponse, error)
	ClearLatestResultFunc    func(ctx context.Context, sessionID string) error
	ArchivedResultsFunc      func(ctx context.Context, sessionID string) ([]dto.ArchivedResultResponse, error)
	DeleteArchivedResultFunc func(ctx context.Context, sessionID, id string) error
	ClearArchiveFunc         func(ctx context.Context, sessionID string) error
	ExerciseProgramFunc      func(ctx context.Context, sessionID string) (*dto.ExerciseProgramResponse, error)
	ExportPDFFunc            func(ctx context.Context, sessionID string) ([]byte, error)
	ChatFunc                 func(ctx context.Context, sessionID string, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

func (m *MockAssessmentService) Questions() []dto.QuestionResponse {
	if m.QuestionsFunc != nil {
		return m.QuestionsFunc()
	}
	panic("MockAssessmentService.QuestionsFunc not implemented")
}
func (m *MockAssessmentService) GroupedQuestions() []dto.CategoryQuestionsResponse {
	if m.GroupedQuestionsFunc != nil {
		return m.GroupedQuestionsFunc()
	}
	panic("MockAssessmentService.GroupedQuestionsFunc not implemented")
}
func (m *MockAssessmentService) ResolvePoints(req *dto.PointsRequest) (*dto.PointsResponse, error) {
	if m.ResolvePointsFunc != nil {
		return m.ResolvePointsFunc(req)
	}
	panic("MockAssessmentService.ResolvePointsFunc not implemented")
}
func (m *MockAssessmentService) Submit(ctx context.Context, sessionID string, req *dto.SubmitAnswersRequest) (*dto.ResultResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, sessionID, req)
	}
	panic("MockAssessmentService.SubmitFunc not implemented")
}
func (m *MockAssessmentService) LatestResult(ctx context.Context, sessionID string) (*dto.ResultResponse, error) {
	if m.LatestResultFunc != nil {
		return m.LatestResultFunc(ctx, sessionID)
	}
	panic("MockAssessmentService.LatestResultFunc not implemented")
}
func (m *MockAssessmentService) HasRecentResult(ctx context.Context, sessionID string) (*dto.RecentResultResponse, error) {
	if m.HasRecentResultFunc != nil {
		return m.HasRecentResultFunc(ctx, sessionID)
	}
	panic("MockAssessmentService.HasRecentResultFunc not implemented")
}
func (m *MockAssessmentService) ClearLatestResult(ctx context.Context, sessionID string) error {
	if m.ClearLatestResultFunc != nil {
		return m.ClearLatestResultFunc(ctx, sessionID)
	}
	panic("MockAssessmentService.ClearLatestResultFunc not implemented")
}
func (m *MockAssessmentService) ArchivedResults(ctx context.Context, sessionID string) ([]dto.ArchivedResultResponse, error) {
	if m.ArchivedResultsFunc != nil {
		return m.ArchivedResultsFunc(ctx, sessionID)
	}
	panic("MockAssessmentService.ArchivedResultsFunc not implemented")
}
func (m *MockAssessmentService) DeleteArchivedResult(ctx context.Context, sessionID, id string) error {
	if m.DeleteArchivedResultFunc != nil {
		return m.DeleteArchivedResultFunc(ctx, sessionID, id)
	}
	panic("MockAssessmentService.DeleteArchivedResultFunc not implemented")
}
func (m *MockAssessmentService) ClearArchive(ctx context.Context, sessionID string) error {
	if m.ClearArchiveFunc != nil {
		return m.ClearArchiveFunc(ctx, sessionID)
	}
	panic("MockAssessmentService.ClearArchiveFunc not implemented")
}
func (m *MockAssessmentService) ExerciseProgram(ctx context.Context, sessionID string) (*dto.ExerciseProgramResponse, error) {
	if m.ExerciseProgramFunc != nil {
		return m.ExerciseProgramFunc(ctx, sessionID)
	}
	panic("MockAssessmentService.ExerciseProgramFunc not implemented")
}
func (m *MockAssessmentService) ExportPDF(ctx context.Context, sessionID string) ([]byte, error) {
	if m.ExportPDFFunc != nil {
		return m.ExportPDFFunc(ctx, sessionID)
	}
	panic("MockAssessmentService.ExportPDFFunc not implemented")
}
func (m *MockAssessmentService) Chat(ctx context.Context, sessionID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, sessionID, req)
	}
	panic("MockAssessmentService.ChatFunc not implemented")
}

var _ service.AssessmentService = (*MockAssessmentService)(nil)

// setupApp wires a Fiber app the way main does: session resolution,
// central error handling, the handler's routes under /api.
func setupApp(mockService *MockAssessmentService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})

	apiGroup := app.Group("/api", middleware.NewSessionMiddleware().Handle())
	handler.NewHealthHandler(mockService).RegisterRoutes(apiGroup, middleware.NewValidationMiddleware())
	return app
}

func TestGetQuestions(t *testing.T) {
	mockService := &MockAssessmentService{
		QuestionsFunc: func() []dto.QuestionResponse {
			return []dto.QuestionResponse{
				{ID: "cardio-1", Category: "cardiovascular", Type: "boolean", Weight: 3, Required: true},
			}
		},
	}
	app := setupApp(mockService)

	req := httptest.NewRequest("GET", "/api/health/questions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var questions []dto.QuestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&questions))
	require.Len(t, questions, 1)
	assert.Equal(t, "cardio-1", questions[0].ID)
}

func TestGetQuestions_GeneratesSessionID(t *testing.T) {
	mockService := &MockAssessmentService{
		QuestionsFunc: func() []dto.QuestionResponse { return nil },
	}
	app := setupApp(mockService)

	req := httptest.NewRequest("GET", "/api/health/questions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Session-ID"))
}

func TestResolvePoints(t *testing.T) {
	mockService := &MockAssessmentService{
		ResolvePointsFunc: func(req *dto.PointsRequest) (*dto.PointsResponse, error) {
			return &dto.PointsResponse{QuestionID: req.QuestionID, Value: req.Value, Points: 7}, nil
		},
	}
	app := setupApp(mockService)

	body, _ := json.Marshal(dto.PointsRequest{QuestionID: "cardio-4", Value: domain.ChoiceValue("rarely")})
	req := httptest.NewRequest("POST", "/api/health/answers/points", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var points dto.PointsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&points))
	assert.Equal(t, 7, points.Points)
}

func TestResolvePoints_MissingFields(t *testing.T) {
	app := setupApp(&MockAssessmentService{})

	req := httptest.NewRequest("POST", "/api/health/answers/points", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitAssessment(t *testing.T) {
	var receivedSessionID string
	mockService := &MockAssessmentService{
		SubmitFunc: func(ctx context.Context, sessionID string, req *dto.SubmitAnswersRequest) (*dto.ResultResponse, error) {
			receivedSessionID = sessionID
			return &dto.ResultResponse{
				TotalScore:       390,
				MaxPossibleScore: 390,
				ScorePercentage:  100,
				HealthLevel:      "excellent",
				CompletedAt:      time.Now(),
			}, nil
		},
	}
	app := setupApp(mockService)

	body, _ := json.Marshal(dto.SubmitAnswersRequest{
		Answers: []dto.AnswerRequest{
			{QuestionID: "cardio-1", Value: domain.BoolValue(false)},
		},
		Partial: true,
	})
	req := httptest.NewRequest("POST", "/api/health/assessments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "my-session-id")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "my-session-id", receivedSessionID)

	var result dto.ResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 100, result.ScorePercentage)
}

func TestSubmitAssessment_EmptyAnswersRejected(t *testing.T) {
	app := setupApp(&MockAssessmentService{})

	req := httptest.NewRequest("POST", "/api/health/assessments", bytes.NewReader([]byte(`{"answers":[]}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetLatestResult_NotFound(t *testing.T) {
	mockService := &MockAssessmentService{
		LatestResultFunc: func(ctx context.Context, sessionID string) (*dto.ResultResponse, error) {
			return nil, domain.NewResultNotFoundError(sessionID)
		},
	}
	app := setupApp(mockService)

	req := httptest.NewRequest("GET", "/api/health/assessments/latest", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetLatestResult_RecentQuery(t *testing.T) {
	mockService := &MockAssessmentService{
		HasRecentResultFunc: func(ctx context.Context, sessionID string) (*dto.RecentResultResponse, error) {
			return &dto.RecentResultResponse{HasRecent: true}, nil
		},
	}
	app := setupApp(mockService)

	req := httptest.NewRequest("GET", "/api/health/assessments/latest?recent=true", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var recent dto.RecentResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recent))
	assert.True(t, recent.HasRecent)
}

func TestClearLatestResult(t *testing.T) {
	cleared := false
	mockService := &MockAssessmentService{
		ClearLatestResultFunc: func(ctx context.Context, sessionID string) error {
			cleared = true
			return nil
		},
	}
	app := setupApp(mockService)

	req := httptest.NewRequest("DELETE", "/api/health/assessments/latest", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.True(t, cleared)
}

func TestDeleteArchivedResult_InvalidIDRejected(t *testing.T) {
	app := setupApp(&MockAssessmentService{})

	req := httptest.NewRequest("DELETE", "/api/health/assessments/not-a-ulid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteArchivedResult(t *testing.T) {
	var deletedID string
	mockService := &MockAssessmentService{
		DeleteArchivedResultFunc: func(ctx context.Context, sessionID, id string) error {
			deletedID = id
			return nil
		},
	}
	app := setupApp(mockService)

	req := httptest.NewRequest("DELETE", "/api/health/assessments/01HZXW8S1N0000000000000000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "01HZXW8S1N0000000000000000", deletedID)
}

func TestExportPDF(t *testing.T) {
	mockService := &MockAssessmentService{
		ExportPDFFunc: func(ctx context.Context, sessionID string) ([]byte, error) {
			return []byte("%PDF-1.3 fake"), nil
		},
	}
	app := setupApp(mockService)

	req := httptest.NewRequest("GET", "/api/health/assessments/latest/pdf", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestChat(t *testing.T) {
	mockService := &MockAssessmentService{
		ChatFunc: func(ctx context.Context, sessionID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
			return &dto.ChatResponse{Reply: "Drink more water."}, nil
		},
	}
	app := setupApp(mockService)

	body, _ := json.Marshal(dto.ChatRequest{Message: "Any quick wins?"})
	req := httptest.NewRequest("POST", "/api/health/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var chat dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&chat))
	assert.Equal(t, "Drink more water.", chat.Reply)
}

func TestChat_AdvisorUnavailable(t *testing.T) {
	mockService := &MockAssessmentService{
		ChatFunc: func(ctx context.Context, sessionID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
			return nil, domain.NewAdvisorServiceError(nil)
		},
	}
	app := setupApp(mockService)

	body, _ := json.Marshal(dto.ChatRequest{Message: "hello"})
	req := httptest.NewRequest("POST", "/api/health/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	app := setupApp(&MockAssessmentService{})

	req := httptest.NewRequest("POST", "/api/health/chat", bytes.NewReader([]byte(`{"message":"  "}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
