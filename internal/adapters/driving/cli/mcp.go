package cli

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose HR records to AI assistants over MCP",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server over the HR store.

Tools and resources act as the user of the current session, so log in
first. An employee session only reaches that employee's records; leave
approval, payroll runs and employee management need an admin session.

The server speaks JSON-RPC on stdin/stdout unless --port is given, in
which case it serves the streamable HTTP transport instead.

Examples:
  hrcentral mcp serve
  hrcentral mcp serve --port 8080
  hrcentral mcp serve --port 8080 --host 0.0.0.0

Desktop client entry:
  {"mcpServers": {"hrcentral": {"command": "hrcentral", "args": ["mcp", "serve"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().String("host", "localhost", "HTTP listen host")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")

	server, err := mcp.NewServer(&mcp.Ports{
		Store:     storeService,
		Assistant: assistantService,
		Version:   version,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if promptWatcher != nil {
		go func() {
			if err := promptWatcher.Watch(ctx); err != nil {
				logger.Warn("prompt reload disabled: %v", err)
			}
		}()
	}

	if port <= 0 {
		return server.Run(ctx)
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}
