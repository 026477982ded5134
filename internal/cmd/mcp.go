package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/evidencetools/rigor/internal/classify"
	"github.com/evidencetools/rigor/internal/input"
	"github.com/evidencetools/rigor/internal/version"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the classifier as an MCP server over stdio",
	Long: `Expose classification as MCP tools so assistant tooling can grade
studies directly. Serves on stdio; add it to your client's MCP config:

  rigor mcp`,
	RunE:         runMCP,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	s := server.NewMCPServer("rigor", version.Short(),
		server.WithToolCapabilities(false),
	)

	classifyTool := mcp.NewTool("classify_study",
		mcp.WithDescription(
			"Grade the causal-inference strength of a research-study abstract or excerpt. "+
				"Returns study type, causal method, strength score, internal-validity risks, "+
				"component scores, an overall evidence grade, and follow-up questions.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The study abstract or methodological excerpt (>= 50 characters)"),
		),
	)
	s.AddTool(classifyTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, ok := studyText(req)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("'text' is required and must be >= %d characters", input.MinLength)), nil
		}
		return jsonResult(classify.ClassifyWithProfile(text, p))
	})

	featuresTool := mcp.NewTool("extract_features",
		mcp.WithDescription(
			"Extract the raw design/quality/validity signals from a study text without scoring it. "+
				"Useful for inspecting what the classifier would see.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The study abstract or methodological excerpt (>= 50 characters)"),
		),
	)
	s.AddTool(featuresTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, ok := studyText(req)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("'text' is required and must be >= %d characters", input.MinLength)), nil
		}
		return jsonResult(classify.ExtractFeatures(text))
	})

	return server.ServeStdio(s)
}

func studyText(req mcp.CallToolRequest) (string, bool) {
	text := req.GetString("text", "")
	if len(text) < input.MinLength {
		return "", false
	}
	return text, true
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
