package config

import (
	"fmt"
	"slices"
	"strings"

	"chatconsole/internal/llm"
	"chatconsole/internal/prompt"

	"github.com/spf13/viper"
)

type Config struct {
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Assistant AssistantConfig `mapstructure:"assistant"`
}

type OpenAIConfig struct {
	APIKey      string   `mapstructure:"api_key"`
	BaseURL     string   `mapstructure:"base_url"`
	Model       string   `mapstructure:"model"`
	Temperature *float64 `mapstructure:"temperature"`
}

type AssistantConfig struct {
	Preset string `mapstructure:"preset"`
	// SystemPrompt replaces the preset text when set.
	SystemPrompt string `mapstructure:"system_prompt"`
}

// SetDefaults registers defaults and env bindings for every key so that
// Unmarshal sees environment overrides even without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("openai.base_url", llm.DefaultBaseURL)
	v.SetDefault("openai.model", llm.DefaultModel)
	v.SetDefault("assistant.preset", prompt.DefaultPreset)
	for _, key := range []string{"openai.api_key", "openai.temperature", "assistant.system_prompt"} {
		_ = v.BindEnv(key)
	}
}

func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if t := c.OpenAI.Temperature; t != nil && (*t < 0 || *t > 2) {
		return fmt.Errorf("invalid openai.temperature: %v (expected 0-2)", *t)
	}
	if c.Assistant.Preset != "" && !slices.Contains(prompt.Names(), strings.ToLower(c.Assistant.Preset)) {
		return fmt.Errorf("invalid assistant.preset: %s", c.Assistant.Preset)
	}
	return nil
}

// SystemPrompt returns the configured override or the rendered preset.
func (c Config) SystemPrompt() (string, error) {
	if c.Assistant.SystemPrompt != "" {
		return c.Assistant.SystemPrompt, nil
	}
	model := c.OpenAI.Model
	if model == "" {
		model = llm.DefaultModel
	}
	return prompt.Load(c.Assistant.Preset, prompt.Vars{Model: model})
}

// ClientConfig maps the loaded settings onto the chat client.
func (c Config) ClientConfig() (llm.Config, error) {
	system, err := c.SystemPrompt()
	if err != nil {
		return llm.Config{}, err
	}
	return llm.Config{
		APIKey:       c.OpenAI.APIKey,
		BaseURL:      c.OpenAI.BaseURL,
		Model:        c.OpenAI.Model,
		Temperature:  c.OpenAI.Temperature,
		SystemPrompt: system,
	}, nil
}
