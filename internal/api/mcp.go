package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/neer2304/foliobot/internal/assistant"
	"github.com/neer2304/foliobot/internal/composer"
	"github.com/neer2304/foliobot/internal/kb"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	KB        *kb.KnowledgeBase
	Assistant *assistant.Engine
	Composer  *composer.Composer
}

// NewMCPServer creates an MCP server exposing the portfolio assistant as
// tools, so agent clients can query the knowledge base over stdio.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"foliobot",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("foliobot — portfolio assistant answering questions about the site owner's skills, projects, experience, and availability."),
		server.WithRecovery(),
	)

	// Tools
	s.AddTool(
		mcp.NewTool("ask_portfolio",
			mcp.WithDescription("Ask the portfolio assistant a free-form question about the site owner."),
			mcp.WithString("question", mcp.Description("The question to ask"), mcp.Required()),
		),
		mcpAskPortfolio(deps),
	)

	s.AddTool(
		mcp.NewTool("list_projects",
			mcp.WithDescription("List all portfolio projects with short descriptions."),
		),
		mcpListProjects(deps),
	)

	s.AddTool(
		mcp.NewTool("project_details",
			mcp.WithDescription("Get the full detail card for a single project."),
			mcp.WithString("name", mcp.Description("Project name, or any text mentioning it"), mcp.Required()),
		),
		mcpProjectDetails(deps),
	)

	// Resources
	s.AddResource(
		mcp.NewResource(
			"portfolio://profile",
			"Portfolio Profile",
			mcp.WithResourceDescription("Site owner profile as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceProfile(deps),
	)

	return s
}

func mcpAskPortfolio(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := req.RequireString("question")
		if err != nil {
			return mcpError("question is required"), nil
		}

		res := deps.Assistant.Respond(question, time.Now())
		return mcpText(res.Reply), nil
	}
}

func mcpListProjects(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type projectSummary struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Year        string `json:"year"`
			Link        string `json:"link"`
		}

		summaries := make([]projectSummary, len(deps.KB.Projects))
		for i, p := range deps.KB.Projects {
			summaries[i] = projectSummary{
				Name:        p.Name,
				Description: p.Description,
				Year:        p.Year,
				Link:        p.Link,
			}
		}

		b, err := json.Marshal(summaries)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal projects: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpProjectDetails(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcpError("name is required"), nil
		}

		p, ok := deps.KB.FindProject(name)
		if !ok {
			// Fall back to the loose entity matcher the chat path uses.
			p, ok = deps.Composer.MatchProject(name)
		}
		if !ok {
			return mcpError(fmt.Sprintf("no project matching %q", name)), nil
		}

		return mcpText(deps.Composer.ProjectCard(p)), nil
	}
}

func mcpResourceProfile(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		type profileView struct {
			Name         string   `json:"name"`
			Role         string   `json:"role"`
			Title        string   `json:"title"`
			ShortBio     string   `json:"short_bio"`
			Location     string   `json:"location"`
			Timezone     string   `json:"timezone"`
			Languages    []string `json:"languages"`
			Availability string   `json:"availability"`
			Education    string   `json:"education"`
		}

		p := deps.KB.Profile
		b, err := json.Marshal(profileView{
			Name:         p.Name,
			Role:         p.Role,
			Title:        p.Title,
			ShortBio:     p.ShortBio,
			Location:     p.Location,
			Timezone:     p.Timezone,
			Languages:    p.Languages,
			Availability: p.Availability,
			Education:    p.Education,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
