package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driving"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// Fallback answers returned instead of errors.
const (
	FallbackNotConfigured     = "API Key not configured."
	FallbackAnnouncementEmpty = "Could not generate announcement."
	FallbackAnnouncementError = "Error generating content. Please check API key."
	FallbackEmailEmpty        = "Could not generate email."
	FallbackEmailError        = "Error generating content."
	FallbackLeaveTrendsEmpty  = "Could not analyze data."
	FallbackLeaveTrendsError  = "Error analyzing data."
)

// Built-in prompt templates, used when no override is stored.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const (
	defaultTone               = "professional"
	defaultAnnouncementPrompt = "Write a short, %s company announcement about: %s. Keep it under 100 words."
	defaultEmailPrompt        = "Draft an email to employee %s. Subject: %s. Key points to cover: %s. Format it clearly."
	defaultLeaveTrendsPrompt  = "Analyze this leave history data and provide a 1-sentence summary of any trends or concerns (e.g. lots of sick leave on Fridays): %s"
)

const (
	assistantRequestsPerSecond   = 1
	assistantBurst               = 3
	assistantMaxTokens           = 512
	assistantCreativeTemperature = 0.7
	assistantAnalysisTemperature = 0.2
)

// AssistantService drafts HR text through an optional LLM service.
type AssistantService struct {
	llm         driven.LLMService
	promptStore driven.PromptStore
	limiter     *rate.Limiter
}

// NewAssistantService creates an assistant. llm and promptStore may be nil.
func NewAssistantService(llm driven.LLMService, promptStore driven.PromptStore) *AssistantService {
	return &AssistantService{
		llm:         llm,
		promptStore: promptStore,
		limiter:     rate.NewLimiter(rate.Limit(assistantRequestsPerSecond), assistantBurst),
	}
}

// Available reports whether a language model is configured.
func (s *AssistantService) Available() bool {
	return s.llm != nil
}

// GenerateAnnouncement drafts a short company announcement about topic.
func (s *AssistantService) GenerateAnnouncement(ctx context.Context, topic, tone string) string {
	if strings.TrimSpace(tone) == "" {
		tone = defaultTone
	}
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptAnnouncement, defaultAnnouncementPrompt), tone, topic)
	return s.generate(ctx, prompt, assistantCreativeTemperature, FallbackAnnouncementEmpty, FallbackAnnouncementError)
}

// DraftEmail drafts an email to an employee covering keyPoints.
func (s *AssistantService) DraftEmail(ctx context.Context, recipientName, subject, keyPoints string) string {
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptEmail, defaultEmailPrompt), recipientName, subject, keyPoints)
	return s.generate(ctx, prompt, assistantCreativeTemperature, FallbackEmailEmpty, FallbackEmailError)
}

// AnalyzeLeaveTrends summarises history in one sentence.
func (s *AssistantService) AnalyzeLeaveTrends(ctx context.Context, history string) string {
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptLeaveTrends, defaultLeaveTrendsPrompt), history)
	return s.generate(ctx, prompt, assistantAnalysisTemperature, FallbackLeaveTrendsEmpty, FallbackLeaveTrendsError)
}

// LeaveHistory renders one line per request for AnalyzeLeaveTrends.
func (s *AssistantService) LeaveHistory(leaves []domain.LeaveRequest) string {
	lines := make([]string, 0, len(leaves))
	for _, l := range leaves {
		lines = append(lines, fmt.Sprintf("%s: %s to %s (%s) - %s",
			l.EmployeeName, l.StartDate, l.EndDate, l.Reason, l.Status))
	}
	return strings.Join(lines, "\n")
}

// generate runs prompt and maps every failure onto a fallback string.
func (s *AssistantService) generate(ctx context.Context, prompt string, temperature float64, empty, failed string) string {
	if s.llm == nil {
		return FallbackNotConfigured
	}
	if err := s.limiter.Wait(ctx); err != nil {
		logger.Debug("assistant: rate limiter: %v", err)
		return failed
	}

	logger.Debug("assistant: generating with %s", s.llm.ModelName())
	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   assistantMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		logger.Debug("assistant: %v", err)
		return failed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return empty
	}
	return text
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (s *AssistantService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil || prompt == "" {
		return fallback
	}
	return prompt
}
