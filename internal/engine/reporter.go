package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"slp/internal/scenario"
)

// Report text.
const (
	ReportHeader     = "System Layers Profiler (Thinking Aid)"
	ReportDisclaimer = "Note: This is not a profiler. It's a mental-model checklist to guide investigation."
)

// maxListed is how many signals or checks a top suspect shows before "...".
const maxListed = 3

// TextOptions controls FormatText.
type TextOptions struct {
	TopN int
	// Highlight decorates likelihood labels. nil leaves them as-is.
	Highlight func(label string) string
}

// RenderText renders the plain-text report.
// Lines are joined with "\n" and there is no trailing newline.
func RenderText(title, description string, insights []LayerInsight, topN int) string {
	return FormatText(Summary{Title: title, Description: description, Insights: insights}, TextOptions{TopN: topN})
}

// FormatText renders the report for a summary.
func FormatText(s Summary, opts TextOptions) string {
	highlight := opts.Highlight
	if highlight == nil {
		highlight = func(label string) string { return label }
	}

	lines := []string{
		ReportHeader,
		"Scenario : " + s.Title,
	}
	if s.Description != "" {
		lines = append(lines, "Why      : "+s.Description)
	}
	lines = append(lines, "", "Top suspects (highest likelihood first):")

	for _, item := range TopSuspects(s.Insights, opts.TopN) {
		lines = append(lines, fmt.Sprintf("- %-9s | Likelihood: %s", item.Name, highlight(item.Likelihood)))
		if len(item.Signals) > 0 {
			lines = append(lines, "  Signals : "+truncateList(item.Signals))
		}
		if len(item.Checks) > 0 {
			lines = append(lines, "  Checks  : "+truncateList(item.Checks))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "Full layer view:")
	for _, item := range s.Insights {
		lines = append(lines, fmt.Sprintf("- %-9s | %s", item.Name, highlight(item.Likelihood)))
	}

	lines = append(lines, "", ReportDisclaimer)
	return strings.Join(lines, "\n")
}

// truncateList joins the first maxListed items with ", " and appends "..." if any were dropped.
func truncateList(items []string) string {
	if len(items) <= maxListed {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:maxListed], ", ") + "..."
}

// jsonSuspect is a ranked insight in the JSON report.
type jsonSuspect struct {
	Rank int `json:"rank"`
	LayerInsight
	Score int `json:"score"`
}

type jsonLayer struct {
	Name       string `json:"name"`
	Likelihood string `json:"likelihood"`
	Score      int    `json:"score"`
}

type jsonReport struct {
	Scenario    string        `json:"scenario"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	TopSuspects []jsonSuspect `json:"topSuspects"`
	Layers      []jsonLayer   `json:"layers"`
}

// FormatJSON renders the report as JSON.
func FormatJSON(key string, s Summary, topN int) (string, error) {
	report := jsonReport{
		Scenario:    key,
		Title:       s.Title,
		Description: s.Description,
		TopSuspects: []jsonSuspect{},
		Layers:      []jsonLayer{},
	}
	for i, item := range TopSuspects(s.Insights, topN) {
		report.TopSuspects = append(report.TopSuspects, jsonSuspect{
			Rank:         i + 1,
			LayerInsight: item,
			Score:        item.Score(),
		})
	}
	for _, item := range s.Insights {
		report.Layers = append(report.Layers, jsonLayer{
			Name:       item.Name,
			Likelihood: item.Likelihood,
			Score:      item.Score(),
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatList renders the --list output. Missing titles print as "".
func FormatList(c scenario.Catalog) string {
	var sb strings.Builder
	sb.WriteString("Available scenarios:")
	for _, s := range c.Scenarios() {
		sb.WriteString(fmt.Sprintf("\n- %s: %s", s.Key, s.Title))
	}
	return sb.String()
}

type jsonListEntry struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// FormatListJSON renders the --list output as JSON.
func FormatListJSON(c scenario.Catalog) (string, error) {
	entries := []jsonListEntry{}
	for _, s := range c.Scenarios() {
		entries = append(entries, jsonListEntry{Key: s.Key, Title: s.Title})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
