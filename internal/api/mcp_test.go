package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neer2304/foliobot/internal/assistant"
	"github.com/neer2304/foliobot/internal/composer"
	"github.com/neer2304/foliobot/internal/kb"
)

func newTestMCPDeps(t *testing.T) MCPDeps {
	t.Helper()
	k := kb.Default()
	c, err := composer.New(k)
	if err != nil {
		t.Fatalf("composer.New: %v", err)
	}
	return MCPDeps{KB: k, Assistant: assistant.New(c), Composer: c}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestMCPAskPortfolio(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpAskPortfolio(deps)

	result, err := handler(context.Background(), makeCallToolRequest("ask_portfolio", map[string]interface{}{
		"question": "what is your tech stack",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}
	if !strings.Contains(toolText(t, result), "Tech Stack") {
		t.Errorf("reply = %q", toolText(t, result))
	}
}

func TestMCPAskPortfolioMissingQuestion(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpAskPortfolio(deps)

	result, err := handler(context.Background(), makeCallToolRequest("ask_portfolio", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for missing question")
	}
}

func TestMCPListProjects(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpListProjects(deps)

	result, err := handler(context.Background(), makeCallToolRequest("list_projects", nil))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var projects []struct {
		Name string `json:"name"`
		Year string `json:"year"`
	}
	if err := json.Unmarshal([]byte(toolText(t, result)), &projects); err != nil {
		t.Fatalf("decoding projects: %v", err)
	}
	if len(projects) != len(deps.KB.Projects) {
		t.Errorf("got %d projects, want %d", len(projects), len(deps.KB.Projects))
	}
	if projects[0].Name != "Resume Builder SaaS" {
		t.Errorf("first project = %q", projects[0].Name)
	}
}

func TestMCPProjectDetails(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpProjectDetails(deps)

	// Exact name.
	result, err := handler(context.Background(), makeCallToolRequest("project_details", map[string]interface{}{
		"name": "CRM for Small Business",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.HasPrefix(toolText(t, result), "**CRM for Small Business**") {
		t.Errorf("card = %q", toolText(t, result))
	}

	// Loose mention falls through to the entity matcher.
	result, err = handler(context.Background(), makeCallToolRequest("project_details", map[string]interface{}{
		"name": "the accumanage one",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.HasPrefix(toolText(t, result), "**AccuManage**") {
		t.Errorf("card = %q", toolText(t, result))
	}

	// No match is a tool error.
	result, err = handler(context.Background(), makeCallToolRequest("project_details", map[string]interface{}{
		"name": "zzz",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for unmatched project")
	}
}

func TestMCPResourceProfile(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpResourceProfile(deps)

	contents, err := handler(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: "portfolio://profile"},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}

	var profile struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(text.Text), &profile); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if profile.Name != deps.KB.Profile.Name {
		t.Errorf("profile name = %q, want %q", profile.Name, deps.KB.Profile.Name)
	}
}
