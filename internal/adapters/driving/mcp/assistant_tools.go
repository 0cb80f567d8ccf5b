package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AnnouncementInput is the input schema for draft_announcement.
type AnnouncementInput struct {
	Topic string `json:"topic" jsonschema:"what the announcement is about"`
	Tone  string `json:"tone,omitempty" jsonschema:"tone of voice (default professional)"`
}

// EmailInput is the input schema for draft_email.
type EmailInput struct {
	Recipient string `json:"recipient" jsonschema:"recipient name"`
	Subject   string `json:"subject"`
	KeyPoints string `json:"keyPoints,omitempty" jsonschema:"points the email must cover"`
}

// TextOutput carries drafted text.
type TextOutput struct {
	Text string `json:"text"`
}

func (s *Server) registerAssistantTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "draft_announcement",
		Description: "Draft a short company announcement",
	}, s.handleDraftAnnouncement)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "draft_email",
		Description: "Draft an email to an employee",
	}, s.handleDraftEmail)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_leave_trends",
		Description: "Summarise the leave requests visible to the current user in one sentence",
	}, s.handleAnalyzeLeaveTrends)
}

func (s *Server) handleDraftAnnouncement(
	ctx context.Context, _ *mcp.CallToolRequest, input AnnouncementInput,
) (*mcp.CallToolResult, TextOutput, error) {
	if _, err := s.actor(); err != nil {
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Text: s.ports.Assistant.GenerateAnnouncement(ctx, input.Topic, input.Tone)}, nil
}

func (s *Server) handleDraftEmail(
	ctx context.Context, _ *mcp.CallToolRequest, input EmailInput,
) (*mcp.CallToolResult, TextOutput, error) {
	if _, err := s.actor(); err != nil {
		return nil, TextOutput{}, err
	}
	text := s.ports.Assistant.DraftEmail(ctx, input.Recipient, input.Subject, input.KeyPoints)
	return nil, TextOutput{Text: text}, nil
}

func (s *Server) handleAnalyzeLeaveTrends(
	ctx context.Context, _ *mcp.CallToolRequest, _ NoInput,
) (*mcp.CallToolResult, TextOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, TextOutput{}, err
	}
	leaves, err := s.ports.Store.Leaves(user)
	if err != nil {
		return nil, TextOutput{}, err
	}
	history := s.ports.Assistant.LeaveHistory(leaves)
	return nil, TextOutput{Text: s.ports.Assistant.AnalyzeLeaveTrends(ctx, history)}, nil
}
