package crust

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatDryRun renders a BuiltRequest as the markdown tool output. The
// rendering is the observable result of every endpoint-backed tool, so it
// must be byte-identical for identical input: query keys are sorted by
// url.Values.Encode and body keys by json.MarshalIndent.
func FormatDryRun(r *BuiltRequest, baseURL string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Dry Run: %s\n\n", r.Tool))
	sb.WriteString("Request built but **not sent** (dry-run mode).\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Method | %s |\n", r.Method))
	sb.WriteString(fmt.Sprintf("| URL | %s |\n", r.URL(baseURL)))
	sb.WriteString("\n")

	if len(r.Body) > 0 {
		pretty, err := json.MarshalIndent(r.Body, "", "  ")
		if err != nil {
			// Body values come from validated JSON input; this is unreachable
			// short of a catalog bug.
			pretty = []byte(fmt.Sprintf("%v", r.Body))
		}
		sb.WriteString("**Body:**\n\n")
		sb.WriteString("```json\n")
		sb.Write(pretty)
		sb.WriteString("\n```\n")
	}

	return sb.String()
}
