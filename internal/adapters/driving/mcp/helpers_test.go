package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/persistence"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/services"
)

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

// newTestStore returns an initialized store over seeded in-memory storage.
func newTestStore(t *testing.T) *services.Store {
	t.Helper()
	policy, err := services.NewPolicy()
	require.NoError(t, err)

	store := services.NewStore(
		persistence.NewAdapter(memory.NewKVStore()), policy, nil, clock.NewFixed(testNow),
	)
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

// newTestServer returns a server whose session user is identifier in role.
// An empty identifier leaves the session empty.
func newTestServer(t *testing.T, identifier string, role domain.Role) (*Server, *services.Store) {
	t.Helper()
	store := newTestStore(t)
	if identifier != "" {
		_, err := store.Login(context.Background(), identifier, role)
		require.NoError(t, err)
	}

	server, err := NewServer(&Ports{Store: store, Assistant: &mockAssistant{}})
	require.NoError(t, err)
	return server, store
}

// mockAssistant is a mock implementation of driving.AssistantService.
type mockAssistant struct {
	lastHistory string
}

func (m *mockAssistant) GenerateAnnouncement(_ context.Context, topic, tone string) string {
	return "announcement: " + topic + " (" + tone + ")"
}

func (m *mockAssistant) DraftEmail(_ context.Context, recipient, subject, _ string) string {
	return "email to " + recipient + ": " + subject
}

func (m *mockAssistant) AnalyzeLeaveTrends(_ context.Context, history string) string {
	m.lastHistory = history
	return "trend summary"
}

func (m *mockAssistant) LeaveHistory(leaves []domain.LeaveRequest) string {
	names := make([]string, 0, len(leaves))
	for _, l := range leaves {
		names = append(names, l.EmployeeName)
	}
	return strings.Join(names, "; ")
}

func (m *mockAssistant) Available() bool { return true }

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}
