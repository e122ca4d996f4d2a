package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/crustdata-mcp/internal/crust"
)

// registerTools registers the ping tool plus one tool per catalog endpoint,
// each wired to the dry-run handler.
func registerTools(s *server.MCPServer, d *DryRunner) {
	s.AddTool(createPingTool(), handlePing(d))
	for i := range crust.Catalog {
		ep := crust.Catalog[i]
		s.AddTool(buildTool(ep), dryRunHandler(d, ep.Name))
	}
}

func createPingTool() mcp.Tool {
	return mcp.NewTool("crustdata_ping",
		mcp.WithDescription("No-op connectivity check. Returns the server version and dry-run status; takes no input."),
		mcp.WithTitleAnnotation("Ping"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// buildTool converts an endpoint descriptor into an mcp.Tool definition.
// All endpoint tools are read-only and idempotent: in dry-run mode they
// never touch the network at all.
func buildTool(ep crust.Endpoint) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(ep.Description),
		mcp.WithTitleAnnotation(ep.Title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	for _, p := range ep.Params {
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(ep.Name, opts...)
}

// paramOption maps a catalog parameter to the matching mcp-go tool option.
func paramOption(p crust.Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case crust.TypeNumber:
		if p.MinSet {
			opts = append(opts, mcp.Min(p.Min))
		}
		return mcp.WithNumber(p.Name, opts...)
	case crust.TypeBoolean:
		return mcp.WithBoolean(p.Name, opts...)
	case crust.TypeArray:
		items := mcp.WithStringItems()
		if len(p.Enum) > 0 {
			items = mcp.WithStringEnumItems(p.Enum)
		}
		opts = append([]mcp.PropertyOption{items}, opts...)
		return mcp.WithArray(p.Name, opts...)
	default:
		if len(p.Enum) > 0 {
			opts = append(opts, mcp.Enum(p.Enum...))
		}
		if p.MaxLen > 0 {
			opts = append(opts, mcp.MaxLength(p.MaxLen))
		}
		return mcp.WithString(p.Name, opts...)
	}
}
