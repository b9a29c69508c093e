package validation

import (
	"strings"
	"testing"

	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidatePointsRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidatePointsRequest(&dto.PointsRequest{
		QuestionID: "cardio-1",
		Value:      domain.BoolValue(true),
	}))

	errs := v.ValidatePointsRequest(&dto.PointsRequest{})
	assert.Len(t, errs, 2)
}

func TestValidateSubmitAnswersRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSubmitAnswersRequest(&dto.SubmitAnswersRequest{
		Answers: []dto.AnswerRequest{
			{QuestionID: "cardio-1", Value: domain.BoolValue(false)},
		},
	}))

	assert.NotEmpty(t, v.ValidateSubmitAnswersRequest(&dto.SubmitAnswersRequest{}))

	errs := v.ValidateSubmitAnswersRequest(&dto.SubmitAnswersRequest{
		Answers: []dto.AnswerRequest{
			{QuestionID: "", Value: domain.BoolValue(false)},
			{QuestionID: "cardio-1"},
		},
	})
	assert.Len(t, errs, 2)
}

func TestValidateChatRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateChatRequest(&dto.ChatRequest{Message: "hi"}))
	assert.NotEmpty(t, v.ValidateChatRequest(&dto.ChatRequest{Message: "   "}))
	assert.NotEmpty(t, v.ValidateChatRequest(&dto.ChatRequest{Message: strings.Repeat("x", 2001)}))

	assert.NotEmpty(t, v.ValidateChatRequest(&dto.ChatRequest{
		Message: "hi",
		History: []dto.ChatTurnRequest{{Role: "system", Content: "x"}},
	}))
	assert.Empty(t, v.ValidateChatRequest(&dto.ChatRequest{
		Message: "hi",
		History: []dto.ChatTurnRequest{{Role: "assistant", Content: "x"}},
	}))
}

func TestValidateArchiveID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateArchiveID("01HZXW8S1N0000000000000000"))
	assert.NotEmpty(t, v.ValidateArchiveID(""))
	assert.NotEmpty(t, v.ValidateArchiveID("not-a-ulid"))
	// Crockford's Base32 excludes I, L, O and U.
	assert.NotEmpty(t, v.ValidateArchiveID("01HZXW8S1I0000000000000000"))
}

func TestValidateSessionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSessionID("b7bb12c4-3f55-4a3b-9a1e-0a9b3c2d1e0f"))
	assert.NotEmpty(t, v.ValidateSessionID("short"))
	assert.NotEmpty(t, v.ValidateSessionID("has spaces in it"))
	assert.NotEmpty(t, v.ValidateSessionID(strings.Repeat("a", 65)))
}
