package driving

import (
	"context"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// AssistantService drafts HR text with a language model.
// Every method returns usable text: when generation is unavailable or
// fails, a fixed fallback message is returned instead of an error.
type AssistantService interface {
	// GenerateAnnouncement drafts a short company announcement.
	// An empty tone means "professional".
	GenerateAnnouncement(ctx context.Context, topic, tone string) string

	// DraftEmail drafts an email to an employee.
	DraftEmail(ctx context.Context, recipientName, subject, keyPoints string) string

	// AnalyzeLeaveTrends summarises a textual leave history in one sentence.
	AnalyzeLeaveTrends(ctx context.Context, history string) string

	// LeaveHistory renders leave requests as the text AnalyzeLeaveTrends expects.
	LeaveHistory(leaves []domain.LeaveRequest) string

	// Available reports whether a language model is configured.
	Available() bool
}
