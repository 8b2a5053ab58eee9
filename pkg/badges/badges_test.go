package badges

import (
	"strings"
	"testing"
)

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Go", expected: "Go"},
		{name: "plus signs", input: "C++", expected: "C%2B%2B"},
		{name: "space", input: "VS Code", expected: "VS%20Code"},
		{name: "unreserved kept", input: "a-b_c.d!e~f*g'h(i)", expected: "a-b_c.d!e~f*g'h(i)"},
		{name: "multibyte", input: "👋", expected: "%F0%9F%91%8B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeURIComponent(tt.input)
			if got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestShieldURL(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		message  string
		color    string
		opts     ShieldOptions
		expected string
	}{
		{
			name:     "label and message with logo",
			label:    "Stars",
			message:  "42",
			color:    "yellow",
			opts:     ShieldOptions{Style: "for-the-badge", Logo: "github", LogoColor: "white"},
			expected: "https://img.shields.io/badge/Stars-42-yellow?style=for-the-badge&logo=github&logoColor=white",
		},
		{
			name:     "dashes escaped",
			label:    "License",
			message:  "Apache-2.0",
			color:    "0080ff",
			opts:     ShieldOptions{Style: "flat"},
			expected: "https://img.shields.io/badge/License-Apache--2.0-0080ff?style=flat",
		},
		{
			name:     "logo color ignored without logo",
			label:    "PRs",
			message:  "welcome",
			color:    "brightgreen",
			opts:     ShieldOptions{LogoColor: "white"},
			expected: "https://img.shields.io/badge/PRs-welcome-brightgreen",
		},
		{
			name:     "label only",
			label:    "my_tool",
			color:    "333333",
			opts:     ShieldOptions{Style: "plastic"},
			expected: "https://img.shields.io/badge/my__tool-333333?style=plastic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShieldURL(tt.label, tt.message, tt.color, tt.opts)
			if got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestIconURL(t *testing.T) {
	tests := []struct {
		name     string
		skill    string
		style    Style
		expected string
	}{
		{
			name:     "skillicons dark",
			skill:    "Go",
			style:    StyleSkillIcons,
			expected: "https://skillicons.dev/icons?i=go&theme=dark",
		},
		{
			name:     "animated adds perline",
			skill:    "TypeScript",
			style:    StyleSkillIconsAnimated,
			expected: "https://skillicons.dev/icons?i=ts&theme=dark&perline=8",
		},
		{
			name:     "shield badge",
			skill:    "Docker",
			style:    StyleShieldsBadge,
			expected: "https://img.shields.io/badge/Docker-2496ED?style=for-the-badge&logo=docker&logoColor=white",
		},
		{
			name:     "unknown name falls back to neutral shield",
			skill:    "COBOL",
			style:    StyleSkillIcons,
			expected: "https://img.shields.io/badge/COBOL-333333?style=flat",
		},
		{
			name:     "unknown style behaves like skillicons",
			skill:    "Rust",
			style:    Style("sparkly"),
			expected: "https://skillicons.dev/icons?i=rust&theme=dark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IconURL(tt.skill, tt.style)
			if got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestRenderSkillsRowLimit(t *testing.T) {
	names := []string{
		"JavaScript", "TypeScript", "Python", "Java", "C", "C++", "C#",
		"Go", "Rust", "Ruby", "PHP", "Swift", "Kotlin", "Dart",
	}

	html := RenderSkills(names, StyleSkillIcons)
	rows := strings.Split(html, "<br />")
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d: %s", len(rows), html)
	}

	first := strings.Count(rows[0], ",") + 1
	if first != MaxIconsPerRow {
		t.Errorf("Expected %d icons in first row, got %d", MaxIconsPerRow, first)
	}

	if !strings.Contains(rows[1], "i=kotlin,dart&theme=dark") {
		t.Errorf("Expected overflow row with kotlin,dart, got '%s'", rows[1])
	}
}

func TestRenderSkillsMinimalRows(t *testing.T) {
	names := []string{"Git", "Docker", "Linux", "Vim", "Figma", "Jest", "Vite"}

	html := RenderSkills(names, StyleMinimal)
	if strings.Count(html, "<img") != 2 {
		t.Errorf("Expected 2 sprite rows for minimal style, got: %s", html)
	}
	if !strings.Contains(html, "&theme=light") {
		t.Errorf("Expected light theme for minimal style, got: %s", html)
	}
}

func TestRenderSkillsUnknownFallback(t *testing.T) {
	html := RenderSkills([]string{"Go", "COBOL"}, StyleSkillIcons)

	if !strings.Contains(html, "icons?i=go&theme=dark") {
		t.Errorf("Expected go sprite, got: %s", html)
	}
	if !strings.Contains(html, `src="https://img.shields.io/badge/COBOL-333333?style=flat" alt="COBOL"`) {
		t.Errorf("Expected neutral COBOL shield, got: %s", html)
	}
}

func TestRenderSkillsShields(t *testing.T) {
	html := RenderSkills([]string{"Node.js", "Mystery"}, StyleShieldsFlat)

	expected := `<img src="https://img.shields.io/badge/Node.js-339933?style=flat&logo=nodedotjs&logoColor=white" alt="Node.js" /> ` +
		`<img src="https://img.shields.io/badge/Mystery-333333?style=flat" alt="Mystery" />`
	if html != expected {
		t.Errorf("Expected '%s', got '%s'", expected, html)
	}
}

func TestRenderSkillsEmpty(t *testing.T) {
	if got := RenderSkills(nil, StyleSkillIcons); got != "" {
		t.Errorf("Expected empty output, got '%s'", got)
	}
}

func TestChunk(t *testing.T) {
	chunks := Chunk([]string{"a", "b", "c", "d", "e"}, 2)
	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[2]) != 1 || chunks[2][0] != "e" {
		t.Errorf("Expected last chunk [e], got %v", chunks[2])
	}
}

func TestPresetsStable(t *testing.T) {
	presets := Presets()
	if len(presets) != 10 {
		t.Fatalf("Expected 10 presets, got %d", len(presets))
	}
	if presets[0].Label != "npm" || presets[9].Label != "stars" {
		t.Errorf("Unexpected preset order: first=%s last=%s", presets[0].Label, presets[9].Label)
	}
}
