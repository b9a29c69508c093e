package advisor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fytai-health-api/internal/config"
	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// ollamaAdvisor implements domain.HealthAdvisor against a local Ollama server.
type ollamaAdvisor struct {
	llm     *ollama.LLM
	timeout time.Duration
}

// NewOllamaAdvisor creates an advisor backed by the configured Ollama model.
func NewOllamaAdvisor(cfg config.AdvisorConfig) (domain.HealthAdvisor, error) {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, domain.NewAdvisorServiceError(err)
	}

	return &ollamaAdvisor{llm: llm, timeout: cfg.Timeout}, nil
}

// Advise implements domain.HealthAdvisor
func (a *ollamaAdvisor) Advise(ctx context.Context, req *domain.AdviceContext) (string, error) {
	l := logger.Get()
	l.Info("Requesting health advice from LLM",
		zap.Int("score_percentage", req.ScorePercentage),
		zap.String("health_level", string(req.HealthLevel)),
		zap.Strings("weak_categories", req.WeakCategories))

	prompt := buildPrompt(req)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	response, err := a.llm.Call(ctx, prompt, llms.WithTemperature(0.1))
	if err != nil {
		if err == context.DeadlineExceeded {
			l.Error("Advisor request timed out", zap.Error(err))
			return "", domain.NewAdvisorServiceError(err)
		}
		l.Error("Failed to get response from advisor LLM", zap.Error(err))
		return "", domain.NewAdvisorServiceError(err)
	}

	return cleanResponse(response), nil
}

func buildPrompt(req *domain.AdviceContext) string {
	var b strings.Builder
	b.WriteString("You are a friendly fitness and health coach. The user completed a health questionnaire.\n\n")
	fmt.Fprintf(&b, "Overall score: %d%% (level: %s)\n", req.ScorePercentage, req.HealthLevel)
	if len(req.WeakCategories) > 0 {
		fmt.Fprintf(&b, "Weak areas: %s\n", strings.Join(req.WeakCategories, ", "))
	}
	if len(req.RiskFactors) > 0 {
		fmt.Fprintf(&b, "Identified risk factors: %s\n", strings.Join(req.RiskFactors, ", "))
	}
	if len(req.Recommendations) > 0 {
		fmt.Fprintf(&b, "Current recommendations: %s\n", strings.Join(req.Recommendations, ", "))
	}
	b.WriteString("\nConversation so far:\n")
	for _, turn := range req.History {
		fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
	}
	fmt.Fprintf(&b, "\nUser question: %s\n\n", req.UserMessage)
	fmt.Fprintf(&b, "Answer in language %q, in under 150 words. ", req.Language)
	b.WriteString("Suggest safe, concrete exercise or lifestyle advice grounded in the data above. ")
	b.WriteString("Recommend seeing a doctor before strenuous activity if risk factors are present.")
	return b.String()
}

// cleanResponse strips reasoning blocks and code fences some models emit.
func cleanResponse(response string) string {
	out := strings.TrimSpace(response)
	if thinkStart := strings.Index(out, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(out, "</think>"); thinkEnd != -1 {
			out = out[thinkEnd+len("</think>"):]
		}
	}
	out = strings.TrimPrefix(out, "```markdown")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
