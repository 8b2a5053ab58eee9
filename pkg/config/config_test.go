package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nikogura/readme-forge/pkg/github"
	"github.com/nikogura/readme-forge/pkg/llm"
	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(body), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"ANTHROPIC_API_KEY",
		"GITHUB_TOKEN",
		"README_FORGE_ANTHROPIC_API_KEY",
		"README_FORGE_GITHUB_TOKEN",
		"README_FORGE_DEFAULTS_OUTPUT_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	configPath := writeConfig(t, `anthropic_api_key: test-key
github_token: gh-token
models:
  generation: claude-test
defaults:
  output_dir: ./out
  debounce_ms: 200
  icon_style: shields-flat
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AnthropicAPIKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.AnthropicAPIKey)
	}

	if cfg.GitHubToken != "gh-token" {
		t.Errorf("Expected GitHub token 'gh-token', got '%s'", cfg.GitHubToken)
	}

	if cfg.GetGenerationModel() != "claude-test" {
		t.Errorf("Expected model 'claude-test', got '%s'", cfg.GetGenerationModel())
	}

	if cfg.GitHub.APIURL != github.DefaultBaseURL {
		t.Errorf("Expected default API URL, got '%s'", cfg.GitHub.APIURL)
	}

	if cfg.Defaults.OutputDir != "./out" {
		t.Errorf("Expected output dir './out', got '%s'", cfg.Defaults.OutputDir)
	}

	if cfg.Debounce() != 200*time.Millisecond {
		t.Errorf("Expected debounce 200ms, got %s", cfg.Debounce())
	}

	if cfg.Defaults.IconStyle != "shields-flat" {
		t.Errorf("Expected icon style 'shields-flat', got '%s'", cfg.Defaults.IconStyle)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("README_FORGE_DEFAULTS_OUTPUT_DIR", "/tmp/readmes")

	configPath := writeConfig(t, "anthropic_api_key: file-key\n")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AnthropicAPIKey != "env-key" {
		t.Errorf("Expected API key 'env-key', got '%s'", cfg.AnthropicAPIKey)
	}

	if cfg.GitHubToken != "env-token" {
		t.Errorf("Expected GitHub token 'env-token', got '%s'", cfg.GitHubToken)
	}

	if cfg.Defaults.OutputDir != "/tmp/readmes" {
		t.Errorf("Expected output dir '/tmp/readmes', got '%s'", cfg.Defaults.OutputDir)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	configPath := writeConfig(t, "{}\n")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GetGenerationModel() != llm.ClaudeModel {
		t.Errorf("Expected model '%s', got '%s'", llm.ClaudeModel, cfg.GetGenerationModel())
	}

	if cfg.Debounce() != 50*time.Millisecond {
		t.Errorf("Expected debounce 50ms, got %s", cfg.Debounce())
	}

	if cfg.Defaults.OutputDir != "." {
		t.Errorf("Expected output dir '.', got '%s'", cfg.Defaults.OutputDir)
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	configPath := writeConfig(t, "defaults:\n  icon_style: sparkles\n")

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("Expected validation failure, got '%v'", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name:      "empty config",
			config:    Config{},
			wantError: false,
		},
		{
			name: "valid config",
			config: Config{
				AnthropicAPIKey: "test-key",
				GitHub:          GitHubConfig{APIURL: "https://ghe.example.com/api/v3"},
				Defaults:        DefaultConfig{OutputDir: "./output", DebounceMS: 100, IconStyle: "logos"},
			},
			wantError: false,
		},
		{
			name:      "bad api url",
			config:    Config{GitHub: GitHubConfig{APIURL: "not a url"}},
			wantError: true,
		},
		{
			name:      "negative debounce",
			config:    Config{Defaults: DefaultConfig{DebounceMS: -1}},
			wantError: true,
		},
		{
			name:      "unknown icon style",
			config:    Config{Defaults: DefaultConfig{IconStyle: "sparkles"}},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateSetsOutputDir(t *testing.T) {
	cfg := Config{}

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Defaults.OutputDir != "." {
		t.Errorf("Expected default output dir '.', got '%s'", cfg.Defaults.OutputDir)
	}
}

func TestRequireAI(t *testing.T) {
	cfg := Config{}

	err := cfg.RequireAI()
	if !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}

	cfg.AnthropicAPIKey = "key"
	err = cfg.RequireAI()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestInitConfig(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := InitConfig(path)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	if written != path {
		t.Errorf("Expected path '%s', got '%s'", path, written)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Config file not created: %v", err)
	}

	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %o", info.Mode().Perm())
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load generated config: %v", err)
	}

	if cfg.Debounce() != 50*time.Millisecond {
		t.Errorf("Expected debounce 50ms, got %s", cfg.Debounce())
	}

	_, err = InitConfig(path)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
