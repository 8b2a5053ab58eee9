// Package config loads readme-forge settings from a YAML file, a .env file
// and the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/nikogura/readme-forge/pkg/github"
	"github.com/nikogura/readme-forge/pkg/llm"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. README_FORGE_DEFAULTS_OUTPUT_DIR.
const EnvPrefix = "README_FORGE"

// Config represents the application configuration.
type Config struct {
	AnthropicAPIKey string        `mapstructure:"anthropic_api_key" yaml:"anthropic_api_key"`
	GitHubToken     string        `mapstructure:"github_token" yaml:"github_token"`
	Models          ModelsConfig  `mapstructure:"models" yaml:"models"`
	GitHub          GitHubConfig  `mapstructure:"github" yaml:"github"`
	Defaults        DefaultConfig `mapstructure:"defaults" yaml:"defaults"`
}

// ModelsConfig holds model selection for generation.
type ModelsConfig struct {
	Generation string `mapstructure:"generation" yaml:"generation,omitempty"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	APIURL string `mapstructure:"api_url" yaml:"api_url" validate:"omitempty,url"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	DebounceMS int    `mapstructure:"debounce_ms" yaml:"debounce_ms" validate:"gte=0,lte=10000"`
	IconStyle  string `mapstructure:"icon_style" yaml:"icon_style" validate:"omitempty,oneof=skillicons skillicons-light skillicons-animated shields-badge shields-flat shields-plastic simple-colored simple-white logos minimal"`
}

// GetGenerationModel returns the generation model or default if not specified.
func (c *Config) GetGenerationModel() (model string) {
	if c.Models.Generation != "" {
		model = c.Models.Generation
		return model
	}
	model = llm.ClaudeModel
	return model
}

// Debounce returns the store regeneration delay.
func (c *Config) Debounce() (delay time.Duration) {
	delay = time.Duration(c.Defaults.DebounceMS) * time.Millisecond
	return delay
}

// RequireAI reports llm.ErrMissingAPIKey when no Anthropic key is configured.
func (c *Config) RequireAI() (err error) {
	if c.AnthropicAPIKey == "" {
		err = errors.Wrap(llm.ErrMissingAPIKey, "set anthropic_api_key in config or ANTHROPIC_API_KEY")
	}
	return err
}

// DefaultPath is $HOME/.readme-forge/config.yaml.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".readme-forge", "config.yaml")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// A missing file is not an error when configPath is empty; every setting
// has a default and the API keys usually come from the environment.
func Load(configPath string) (cfg Config, err error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("anthropic_api_key", "")
	v.SetDefault("github_token", "")
	v.SetDefault("models.generation", llm.ClaudeModel)
	v.SetDefault("github.api_url", github.DefaultBaseURL)
	v.SetDefault("defaults.output_dir", ".")
	v.SetDefault("defaults.debounce_ms", 50)
	v.SetDefault("defaults.icon_style", "")

	err = v.BindEnv("anthropic_api_key", EnvPrefix+"_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if err != nil {
		err = errors.Wrap(err, "failed to bind ANTHROPIC_API_KEY")
		return cfg, err
	}

	err = v.BindEnv("github_token", EnvPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN")
	if err != nil {
		err = errors.Wrap(err, "failed to bind GITHUB_TOKEN")
		return cfg, err
	}

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	_, statErr := os.Stat(path)
	if configPath != "" || statErr == nil {
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			if os.IsNotExist(statErr) {
				err = errors.Errorf("config file not found: %s (run 'readme-forge init' to create)", path)
				return cfg, err
			}
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks the configured values.
func (c *Config) Validate() (err error) {
	err = validator.New().Struct(c)
	if err != nil {
		return err
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "."
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	defaultConfig := Config{
		AnthropicAPIKey: "sk-ant-api03-...",
		GitHubToken:     "",
		Models: ModelsConfig{
			Generation: llm.ClaudeModel,
		},
		GitHub: GitHubConfig{
			APIURL: github.DefaultBaseURL,
		},
		Defaults: DefaultConfig{
			OutputDir:  ".",
			DebounceMS: 50,
		},
	}

	var data []byte
	data, err = yaml.Marshal(defaultConfig)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
