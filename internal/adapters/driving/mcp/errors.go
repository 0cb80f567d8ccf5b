// Package mcp provides an MCP (Model Context Protocol) server adapter for HR Central.
// It lets AI assistants read and maintain HR records as the logged-in user.
package mcp

import "errors"

// ErrMissingStore is returned when the store is not provided.
var ErrMissingStore = errors.New("mcp: store is required")
