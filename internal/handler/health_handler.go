package handler

import (
	"fytai-health-api/internal/dto"
	"fytai-health-api/internal/logger"
	"fytai-health-api/internal/middleware"
	"fytai-health-api/internal/service"
	"fytai-health-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler handles questionnaire-related HTTP requests
type HealthHandler struct {
	service   service.AssessmentService
	validator *validation.Validator
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(service service.AssessmentService) *HealthHandler {
	return &HealthHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetQuestions godoc
// @Summary Get all questionnaire questions
// @Description Returns the question catalog in presentation order
// @Tags questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Router /health/questions [get]
func (h *HealthHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(h.service.Questions())
}

// GetQuestionsByCategory godoc
// @Summary Get questions grouped by category
// @Description Returns the question catalog grouped by health category
// @Tags questions
// @Produce json
// @Success 200 {array} dto.CategoryQuestionsResponse
// @Router /health/questions/by-category [get]
func (h *HealthHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	return c.JSON(h.service.GroupedQuestions())
}

// ResolvePoints godoc
// @Summary Resolve points for an answer value
// @Description Looks up the catalog points earned by a selected option
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.PointsRequest true "Selection"
// @Success 200 {object} dto.PointsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /health/answers/points [post]
func (h *HealthHandler) ResolvePoints(c *fiber.Ctx) error {
	var req dto.PointsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidatePointsRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.ResolvePoints(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAssessment godoc
// @Summary Score a questionnaire submission
// @Description Scores the submitted answers and stores the result for the session
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswersRequest true "Answer set"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /health/assessments [post]
func (h *HealthHandler) SubmitAssessment(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateSubmitAnswersRequest(&req); len(errs) > 0 {
		return errs
	}

	sessionID := middleware.SessionID(c)
	resp, err := h.service.Submit(c.Context(), sessionID, &req)
	if err != nil {
		logger.Get().Error("Failed to score submission",
			zap.Error(err), zap.String("session_id", sessionID))
		return err
	}
	return c.JSON(resp)
}

// GetLatestResult godoc
// @Summary Get the latest result
// @Description Returns the latest stored result for the session. With recent=true it only reports whether a fresh result exists.
// @Tags assessments
// @Produce json
// @Param recent query bool false "Only check for a recent result"
// @Success 200 {object} dto.ResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /health/assessments/latest [get]
func (h *HealthHandler) GetLatestResult(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)

	if c.QueryBool("recent") {
		resp, err := h.service.HasRecentResult(c.Context(), sessionID)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.LatestResult(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ClearLatestResult godoc
// @Summary Clear the latest result
// @Description Removes the stored result for the session
// @Tags assessments
// @Success 204
// @Router /health/assessments/latest [delete]
func (h *HealthHandler) ClearLatestResult(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	if err := h.service.ClearLatestResult(c.Context(), sessionID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListArchivedResults godoc
// @Summary List saved results
// @Description Returns the session's saved results, newest first
// @Tags archive
// @Produce json
// @Success 200 {array} dto.ArchivedResultResponse
// @Router /health/assessments [get]
func (h *HealthHandler) ListArchivedResults(c *fiber.Ctx) error {
	resp, err := h.service.ArchivedResults(c.Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteArchivedResult godoc
// @Summary Delete a saved result
// @Description Removes one saved result from the session's archive
// @Tags archive
// @Param id path string true "Archived result ID"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /health/assessments/{id} [delete]
func (h *HealthHandler) DeleteArchivedResult(c *fiber.Ctx) error {
	id, _ := c.Locals("validated_archive_id").(string)
	if id == "" {
		id = c.Params("id")
	}
	if err := h.service.DeleteArchivedResult(c.Context(), middleware.SessionID(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearArchive godoc
// @Summary Delete all saved results
// @Description Clears the session's archive
// @Tags archive
// @Success 204
// @Router /health/assessments/all [delete]
func (h *HealthHandler) ClearArchive(c *fiber.Ctx) error {
	if err := h.service.ClearArchive(c.Context(), middleware.SessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetExerciseProgram godoc
// @Summary Get the exercise program for the latest result
// @Description Builds a weekly exercise program from the latest stored result
// @Tags exercises
// @Produce json
// @Success 200 {object} dto.ExerciseProgramResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /health/assessments/latest/exercises [get]
func (h *HealthHandler) GetExerciseProgram(c *fiber.Ctx) error {
	resp, err := h.service.ExerciseProgram(c.Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ExportPDF godoc
// @Summary Export the latest result as PDF
// @Description Renders the latest stored result as a downloadable PDF report
// @Tags assessments
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /health/assessments/latest/pdf [get]
func (h *HealthHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.service.ExportPDF(c.Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="health-report.pdf"`)
	return c.Send(data)
}

// Chat godoc
// @Summary Ask the health advisor
// @Description Sends a question about the latest result to the AI advisor
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /health/chat [post]
func (h *HealthHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateChatRequest(&req); len(errs) > 0 {
		return errs
	}

	sessionID := middleware.SessionID(c)
	resp, err := h.service.Chat(c.Context(), sessionID, &req)
	if err != nil {
		logger.Get().Error("Advisor chat failed",
			zap.Error(err), zap.String("session_id", sessionID))
		return err
	}
	return c.JSON(resp)
}

// RegisterRoutes mounts the questionnaire API under the given router.
func (h *HealthHandler) RegisterRoutes(router fiber.Router, vm *middleware.ValidationMiddleware) {
	health := router.Group("/health")

	health.Get("/questions", h.GetQuestions)
	health.Get("/questions/by-category", h.GetQuestionsByCategory)
	health.Post("/answers/points", h.ResolvePoints)

	health.Post("/assessments", h.SubmitAssessment)
	health.Get("/assessments", h.ListArchivedResults)
	health.Get("/assessments/latest", h.GetLatestResult)
	health.Delete("/assessments/latest", h.ClearLatestResult)
	health.Get("/assessments/latest/exercises", h.GetExerciseProgram)
	health.Get("/assessments/latest/pdf", h.ExportPDF)
	health.Delete("/assessments/all", h.ClearArchive)
	health.Delete("/assessments/:id", vm.ValidateArchiveID(), h.DeleteArchivedResult)

	health.Post("/chat", h.Chat)
}
