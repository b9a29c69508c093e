package middleware

import (
	"fytai-health-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// SessionIDHeader carries the client's session identifier.
	SessionIDHeader = "X-Session-ID"
	// SessionIDKey is the context local under which the session ID is stored.
	SessionIDKey = "session_id"
)

// SessionMiddleware resolves the per-client session identifier.
// Clients without a session header get a generated one back in the
// response so they can persist it for subsequent calls.
type SessionMiddleware struct {
	validator *validation.Validator
}

// NewSessionMiddleware creates a new session middleware instance
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{
		validator: validation.NewValidator(),
	}
}

// Handle extracts or generates the session ID for the request.
func (sm *SessionMiddleware) Handle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(SessionIDHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		} else if errs := sm.validator.ValidateSessionID(sessionID); len(errs) > 0 {
			return errs
		}

		c.Locals(SessionIDKey, sessionID)
		c.Set(SessionIDHeader, sessionID)
		return c.Next()
	}
}

// SessionID reads the resolved session ID from the request context.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionIDKey).(string); ok {
		return id
	}
	return ""
}
