package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/crustdata-mcp/internal/common"
	"github.com/bobmcallan/crustdata-mcp/internal/crust"
)

// DryRunner turns tool calls into rendered dry-run requests. It carries no
// mutable state: concurrent calls are independent.
type DryRunner struct {
	baseURL string
	logger  *common.Logger
}

// NewDryRunner creates a runner rendering requests against the given base URL.
func NewDryRunner(baseURL string, logger *common.Logger) *DryRunner {
	return &DryRunner{
		baseURL: baseURL,
		logger:  logger,
	}
}

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// --- Handlers ---

// run resolves the endpoint for toolName, validates the arguments, builds the
// request, and renders it. Every failure comes back as an IsError result;
// nothing here is fatal to the process or to subsequent calls.
func (d *DryRunner) run(toolName string, args map[string]any) (*mcp.CallToolResult, error) {
	log := d.logger.WithCorrelationId(uuid.NewString())
	log.Debug().Str("tool", toolName).Msg("Tool call received")

	ep, err := crust.Lookup(toolName)
	if err != nil {
		log.Warn().Str("tool", toolName).Msg("No endpoint registered for tool")
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}

	params, err := crust.Validate(ep, args)
	if err != nil {
		var verr *crust.ValidationError
		if errors.As(err, &verr) {
			log.Debug().Str("tool", toolName).Str("field", verr.Field).Msg("Validation failed")
		}
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}

	req, err := crust.Build(ep, params)
	if err != nil {
		log.Error().Err(err).Str("tool", toolName).Msg("Request build failed")
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}

	log.Debug().
		Str("tool", toolName).
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("Dry-run request built")

	return textResult(crust.FormatDryRun(req, d.baseURL)), nil
}

// dryRunHandler adapts one catalog endpoint to an mcp-go tool handler.
func dryRunHandler(d *DryRunner, toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.run(toolName, request.GetArguments())
	}
}

// handlePing returns a fixed acknowledgement. No validation or request
// building happens here.
func handlePing(d *DryRunner) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(fmt.Sprintf("Crustdata MCP Server\nVersion: %s\nMode: dry-run\nStatus: OK",
			common.GetVersion())), nil
	}
}
