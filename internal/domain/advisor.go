package domain

import "context"

// ChatTurn is one prior exchange in an advice conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// AdviceContext flattens a Result into the payload the advisor consumes.
// Labels and descriptions stay translation keys; the advisor receives the
// user's language and phrases its reply accordingly.
type AdviceContext struct {
	ScorePercentage int
	HealthLevel     Level
	WeakCategories  []string
	RiskFactors     []string
	Recommendations []string
	History         []ChatTurn
	UserMessage     string
	Language        string
}

// HealthAdvisor is the port for the external AI recommendation service.
// Implementations are opaque request/response boundaries; a failure never
// invalidates the Result being discussed.
type HealthAdvisor interface {
	Advise(ctx context.Context, req *AdviceContext) (string, error)
}
