package mcp

import (
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Store owns the session and the HR records.
	Store driving.Store

	// Assistant drafts HR text. Optional; the drafting tools are only
	// registered when it is set.
	Assistant driving.AssistantService

	// Version is reported to clients during initialization.
	Version string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Store == nil {
		return ErrMissingStore
	}
	return nil
}
