package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neer2304/foliobot/internal/assistant"
	"github.com/neer2304/foliobot/internal/composer"
	"github.com/neer2304/foliobot/internal/config"
	"github.com/neer2304/foliobot/internal/kb"
	"github.com/neer2304/foliobot/internal/resume"
)

// newLocalEngine builds the assistant directly over the static knowledge
// base. The ask/projects/resume commands work without a running server.
func newLocalEngine() (*assistant.Engine, *composer.Composer, *kb.KnowledgeBase, error) {
	knowledge := kb.Default()
	comp, err := composer.New(knowledge)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building composer: %w", err)
	}
	return assistant.New(comp), comp, knowledge, nil
}

// --- ask ---

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the assistant a question locally",
	Long: `Ask the assistant a question locally, without a running server.

Examples:
  foliobot ask "what is your tech stack"
  foliobot ask --intent "tell me about the CRM project"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showIntent, _ := cmd.Flags().GetBool("intent")

		engine, _, _, err := newLocalEngine()
		if err != nil {
			return err
		}

		res := engine.Respond(strings.Join(args, " "), time.Now())
		if showIntent {
			fmt.Fprintln(cmd.OutOrStdout(), colorize(colorCyan, "intent: "+res.Intent.String()))
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Reply)
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("intent", false, "also print the classified intent")
}

// --- projects ---

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List portfolio projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, knowledge, err := newLocalEngine()
		if err != nil {
			return err
		}

		for _, p := range knowledge.Projects {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n  %s\n",
				colorize(colorBold, p.Name), p.Year, p.Description)
		}
		return nil
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the detail card for one project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, comp, knowledge, err := newLocalEngine()
		if err != nil {
			return err
		}

		name := strings.Join(args, " ")
		p, ok := knowledge.FindProject(name)
		if !ok {
			p, ok = comp.MatchProject(name)
		}
		if !ok {
			return fmt.Errorf("no project matching %q", name)
		}

		fmt.Fprintln(cmd.OutOrStdout(), comp.ProjectCard(p))
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsShowCmd)
}

// --- visitors ---

var visitorsCmd = &cobra.Command{
	Use:   "visitors",
	Short: "Inspect and export the visit log",
}

var visitorsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show visit statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), fmt.Sprintf("/api/visitor-analytics?days=%d", days))
		if err != nil {
			return err
		}

		var stats struct {
			Total  int `json:"total"`
			ByPage []struct {
				Page  string `json:"page"`
				Count int    `json:"count"`
			} `json:"by_page"`
			ByDay []struct {
				Day   string `json:"day"`
				Count int    `json:"count"`
			} `json:"by_day"`
		}
		if err := decodeJSON(resp, &stats); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %d\n", colorize(colorBold, "Total visits:"), stats.Total)

		if len(stats.ByPage) > 0 {
			fmt.Fprintf(out, "\n%s\n", colorize(colorBold, "By page:"))
			for _, pc := range stats.ByPage {
				fmt.Fprintf(out, "  %-30s %d\n", pc.Page, pc.Count)
			}
		}
		if len(stats.ByDay) > 0 {
			fmt.Fprintf(out, "\n%s\n", colorize(colorBold, fmt.Sprintf("Last %d days:", days)))
			for _, dc := range stats.ByDay {
				fmt.Fprintf(out, "  %s  %d\n", dc.Day, dc.Count)
			}
		}
		return nil
	},
}

var visitorsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the visit log as a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		visits, err := fetchAllVisits(cmd, client)
		if err != nil {
			return err
		}
		if len(visits) == 0 {
			printWarning("No visits to export")
			return nil
		}

		if err := writeVisitsXLSX(output, visits); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}

		printSuccess("Exported %d visits to %s", len(visits), output)
		return nil
	},
}

func fetchAllVisits(cmd *cobra.Command, client *apiClient) ([]exportVisit, error) {
	var all []exportVisit
	offset := 0
	for {
		resp, err := client.get(cmd.Context(), fmt.Sprintf("/api/visitors?limit=500&offset=%d", offset))
		if err != nil {
			return nil, err
		}
		var page []exportVisit
		if err := decodeJSON(resp, &page); err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return all, nil
		}
		all = append(all, page...)
		offset += len(page)
	}
}

func init() {
	visitorsStatsCmd.Flags().Int("days", 30, "trailing window for the per-day breakdown")
	visitorsExportCmd.Flags().String("output", "visitors.xlsx", "output .xlsx file path")
	visitorsCmd.AddCommand(visitorsStatsCmd)
	visitorsCmd.AddCommand(visitorsExportCmd)
}

// --- messages / suggestions / chat log ---

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List contact form messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), fmt.Sprintf("/api/messages?limit=%d", limit))
		if err != nil {
			return err
		}

		var msgs []struct {
			Name      string `json:"name"`
			Email     string `json:"email"`
			Message   string `json:"message"`
			CreatedAt string `json:"created_at"`
		}
		if err := decodeJSON(resp, &msgs); err != nil {
			return err
		}
		if len(msgs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No messages.")
			return nil
		}

		for _, m := range msgs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s <%s>\n  %s\n",
				m.CreatedAt, colorize(colorBold, m.Name), m.Email, truncate(m.Message, 120))
		}
		return nil
	},
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "List suggestion box entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), fmt.Sprintf("/api/suggestions?limit=%d", limit))
		if err != nil {
			return err
		}

		var sgs []struct {
			Message   string `json:"message"`
			CreatedAt string `json:"created_at"`
		}
		if err := decodeJSON(resp, &sgs); err != nil {
			return err
		}
		if len(sgs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No suggestions.")
			return nil
		}

		for _, s := range sgs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", s.CreatedAt, truncate(s.Message, 120))
		}
		return nil
	},
}

var chatlogCmd = &cobra.Command{
	Use:   "chatlog",
	Short: "List recent assistant exchanges",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), fmt.Sprintf("/api/chat-log?limit=%d", limit))
		if err != nil {
			return err
		}

		var entries []struct {
			Message   string `json:"message"`
			Intent    string `json:"intent"`
			CreatedAt string `json:"created_at"`
		}
		if err := decodeJSON(resp, &entries); err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No chat exchanges.")
			return nil
		}

		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
				e.CreatedAt, colorize(colorCyan, fmt.Sprintf("%-16s", e.Intent)), truncate(e.Message, 80))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func init() {
	messagesCmd.Flags().Int("limit", 50, "maximum number of messages to list")
	suggestionsCmd.Flags().Int("limit", 50, "maximum number of suggestions to list")
	chatlogCmd.Flags().Int("limit", 50, "maximum number of exchanges to list")
}

// --- resume ---

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Check the resume PDF against the knowledge base",
}

var resumeCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Report skills and projects missing from the resume PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, knowledge, err := newLocalEngine()
		if err != nil {
			return err
		}

		cov, err := resume.CheckFile(args[0], knowledge)
		if err != nil {
			return err
		}

		printStatus("Skills covered", "%d of %d", len(cov.SkillsCovered), len(cov.SkillsCovered)+len(cov.SkillsMissing))
		printStatus("Projects covered", "%d of %d", len(cov.ProjectsCovered), len(cov.ProjectsCovered)+len(cov.ProjectsMissing))

		if cov.Covered() {
			printSuccess("Resume covers every skill and project")
			return nil
		}
		if len(cov.SkillsMissing) > 0 {
			printWarning("Missing skills: %s", strings.Join(cov.SkillsMissing, ", "))
		}
		if len(cov.ProjectsMissing) > 0 {
			printWarning("Missing projects: %s", strings.Join(cov.ProjectsMissing, ", "))
		}
		return nil
	},
}

func init() {
	resumeCmd.AddCommand(resumeCheckCmd)
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
