package validation

import (
	"regexp"
	"strings"

	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/dto"
)

const (
	maxChatMessageLength = 2000
	maxChatHistoryTurns  = 20
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePointsRequest validates a points-resolution request
func (v *Validator) ValidatePointsRequest(req *dto.PointsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuestionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("questionId"))
	}
	if req.Value.Kind == domain.ValueUnset {
		errors = append(errors, domain.NewMissingFieldError("value"))
	}

	return errors
}

// ValidateSubmitAnswersRequest validates a questionnaire submission
func (v *Validator) ValidateSubmitAnswersRequest(req *dto.SubmitAnswersRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
		return errors
	}

	for _, a := range req.Answers {
		if strings.TrimSpace(a.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers.questionId"))
		}
		if a.Value.Kind == domain.ValueUnset {
			errors = append(errors, domain.NewInvalidFormatError("answers.value", a.QuestionID))
		}
	}

	return errors
}

// ValidateChatRequest validates a health advice chat request
func (v *Validator) ValidateChatRequest(req *dto.ChatRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	message := strings.TrimSpace(req.Message)
	if message == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	} else if len(req.Message) > maxChatMessageLength {
		errors = append(errors, domain.NewOutOfRangeError("message", len(req.Message), 1, maxChatMessageLength))
	}

	if len(req.History) > maxChatHistoryTurns {
		errors = append(errors, domain.NewOutOfRangeError("history", len(req.History), 0, maxChatHistoryTurns))
	}
	for _, turn := range req.History {
		if turn.Role != "user" && turn.Role != "assistant" {
			errors = append(errors, domain.NewInvalidFormatError("history.role", turn.Role))
		}
	}

	return errors
}

// ValidateArchiveID validates an archived result identifier
func (v *Validator) ValidateArchiveID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// ValidateSessionID validates the session identifier header value
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if !isValidSessionID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("X-Session-ID", sessionID))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford's Base32
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidSessionID accepts UUIDs and similar opaque client identifiers
func isValidSessionID(s string) bool {
	if len(s) < 8 || len(s) > 64 {
		return false
	}
	validSession := regexp.MustCompile(`^[0-9A-Za-z_-]+$`)
	return validSession.MatchString(s)
}
