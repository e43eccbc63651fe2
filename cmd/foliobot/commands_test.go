package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/neer2304/foliobot/internal/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
	Auth   string
}

type testServer struct {
	server   *httptest.Server
	requests []recordedRequest
}

func newTestServer(t *testing.T, responses map[string]string) *testServer {
	t.Helper()
	ts := &testServer{}

	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)

		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.RequestURI(),
			Body:   body.String(),
			Auth:   r.Header.Get("Authorization"),
		})

		key := r.Method + " " + r.URL.Path
		if resp, ok := responses[key]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(resp))
			return
		}

		w.WriteHeader(404)
		w.Write([]byte(`{"error":{"message":"not found","type":"not_found"}}`))
	}))

	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) client() *apiClient {
	return &apiClient{
		baseURL:    ts.server.URL,
		token:      "test-token",
		httpClient: ts.server.Client(),
	}
}

var ctx = context.Background()

func TestAskCommand(t *testing.T) {
	var out bytes.Buffer
	askCmd.SetOut(&out)
	defer askCmd.SetOut(nil)
	defer askCmd.Flags().Set("intent", "false")

	if err := askCmd.RunE(askCmd, []string{"show", "me", "your", "projects"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Key Projects") {
		t.Errorf("output = %q, want project list", out.String())
	}
}

func TestAskCommandIntentFlag(t *testing.T) {
	var out bytes.Buffer
	askCmd.SetOut(&out)
	defer askCmd.SetOut(nil)

	askCmd.Flags().Set("intent", "true")
	defer askCmd.Flags().Set("intent", "false")

	if err := askCmd.RunE(askCmd, []string{"hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "intent: greeting") {
		t.Errorf("output = %q, want classified intent line", out.String())
	}
}

func TestProjectsShowFallbackMatch(t *testing.T) {
	var out bytes.Buffer
	projectsShowCmd.SetOut(&out)
	defer projectsShowCmd.SetOut(nil)

	if err := projectsShowCmd.RunE(projectsShowCmd, []string{"accumanage"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "**AccuManage**") {
		t.Errorf("output = %q, want AccuManage card", out.String())
	}
}

func TestProjectsShowNoMatch(t *testing.T) {
	if err := projectsShowCmd.RunE(projectsShowCmd, []string{"zzz"}); err == nil {
		t.Error("expected error for unmatched project")
	}
}

func TestVisitorAnalyticsDecode(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"GET /api/visitor-analytics": `{"total":12,"by_page":[{"page":"/","count":9}],"by_day":[{"day":"2025-05-01","count":3}]}`,
	})

	client := ts.client()
	resp, err := client.get(ctx, "/api/visitor-analytics?days=30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stats struct {
		Total  int `json:"total"`
		ByPage []struct {
			Page  string `json:"page"`
			Count int    `json:"count"`
		} `json:"by_page"`
	}
	if err := decodeJSON(resp, &stats); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	if stats.Total != 12 {
		t.Errorf("total = %d, want 12", stats.Total)
	}
	if len(stats.ByPage) != 1 || stats.ByPage[0].Page != "/" {
		t.Errorf("by_page = %+v", stats.ByPage)
	}

	if len(ts.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(ts.requests))
	}
	if ts.requests[0].Auth != "Bearer test-token" {
		t.Errorf("auth = %q, want Bearer test-token", ts.requests[0].Auth)
	}
	if !strings.Contains(ts.requests[0].Path, "days=30") {
		t.Errorf("path = %q, want days param", ts.requests[0].Path)
	}
}

func TestWriteVisitsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.xlsx")
	visits := []exportVisit{
		{ID: "v1", IP: "203.0.113.7", Country: "India", Page: "/projects", VisitedAt: "2025-05-01T12:00:00Z"},
		{ID: "v2", IP: "198.51.100.1", Country: "Germany", Page: "/", VisitedAt: "2025-05-02T08:30:00Z"},
	}

	if err := writeVisitsXLSX(path, visits); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Visits")
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][2] != "India" || rows[2][2] != "Germany" {
		t.Errorf("country column = %v / %v", rows[1], rows[2])
	}
}

func TestStatusCommand_Stopped(t *testing.T) {
	ts := newTestServer(t, map[string]string{})
	ts.server.Close()

	client := ts.client()
	if _, err := client.get(ctx, "/health"); err == nil {
		t.Fatal("expected error for stopped server")
	} else if !strings.Contains(err.Error(), "not reachable") {
		t.Errorf("error = %q, want it to mention 'not reachable'", err.Error())
	}
}

func TestDecodeJSON_ErrorResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error":{"message":"unauthorized","type":"authentication_error"}}`))
	}))
	defer ts.Close()

	client := &apiClient{
		baseURL:    ts.URL,
		token:      "bad-token",
		httpClient: ts.Client(),
	}

	resp, err := client.get(ctx, "/api/visitors")
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}

	var result any
	if err := decodeJSON(resp, &result); err == nil {
		t.Fatal("expected error for 401 response")
	} else if !strings.Contains(err.Error(), "401") {
		t.Errorf("error = %q, want it to contain '401'", err.Error())
	}
}

func TestAPIClientAuth(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"GET /health": `{"status":"ok"}`,
	})

	client := ts.client()
	client.token = "my-secret-token"

	if _, err := client.get(ctx, "/health"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ts.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(ts.requests))
	}
	if ts.requests[0].Auth != "Bearer my-secret-token" {
		t.Errorf("auth = %q, want 'Bearer my-secret-token'", ts.requests[0].Auth)
	}
}

func TestChatPost(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /api/chat": `{"reply":"hello there","intent":"greeting","timestamp":"2025-05-01T12:00:00Z"}`,
	})

	client := ts.client()
	resp, err := client.post(ctx, "/api/chat", map[string]string{"message": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result map[string]string
	if err := decodeJSON(resp, &result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result["intent"] != "greeting" {
		t.Errorf("intent = %q, want greeting", result["intent"])
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(ts.requests[0].Body), &body); err != nil {
		t.Fatalf("body parse error: %v", err)
	}
	if body["message"] != "hi" {
		t.Errorf("body.message = %v, want hi", body["message"])
	}
}

func TestNoColorFlag(t *testing.T) {
	old := noColor
	defer func() { noColor = old }()

	noColor = true
	result := colorize(colorGreen, "test message")
	if strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=true should not contain ANSI codes, got %q", result)
	}
	if result != "test message" {
		t.Errorf("result = %q, want %q", result, "test message")
	}

	noColor = false
	result = colorize(colorGreen, "test message")
	if !strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=false should contain ANSI codes, got %q", result)
	}
}

func TestCountLabel(t *testing.T) {
	tests := []struct {
		count, limit int
		want         string
	}{
		{5, 100, "5"},
		{0, 100, "0"},
		{100, 100, "100+"},
		{150, 100, "150+"},
	}
	for _, tt := range tests {
		if got := countLabel(tt.count, tt.limit); got != tt.want {
			t.Errorf("countLabel(%d, %d) = %q, want %q", tt.count, tt.limit, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a long message here", 6); got != "a long..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestConfigShowAll(t *testing.T) {
	cfg := config.Config{}
	cfg.Server.Port = 8080
	cfg.Visits.RetentionDays = 180

	keys := config.ShowAll(cfg)
	if len(keys) == 0 {
		t.Fatal("expected non-empty keys from ShowAll")
	}

	found := false
	for _, k := range keys {
		if k.Key == "server.port" && k.Value == "8080" {
			found = true
		}
	}
	if !found {
		t.Error("expected to find server.port=8080 in ShowAll output")
	}
}
