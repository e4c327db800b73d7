package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chatconsole/internal/llm"

	"github.com/spf13/viper"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetEnvPrefix("CHATCONSOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpenAI.Model != llm.DefaultModel {
		t.Fatalf("unexpected model: %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.BaseURL != llm.DefaultBaseURL {
		t.Fatalf("unexpected base url: %s", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Temperature != nil {
		t.Fatalf("temperature should be unset, got %v", *cfg.OpenAI.Temperature)
	}
	if cfg.Assistant.Preset != "guide" {
		t.Fatalf("unexpected preset: %s", cfg.Assistant.Preset)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chatconsole.yaml")
	content := `openai:
  model: gpt-4o
  temperature: 0.7
assistant:
  preset: persona
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	v := newViper(t)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected model: %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature == nil || *cfg.OpenAI.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", cfg.OpenAI.Temperature)
	}
	system, err := cfg.SystemPrompt()
	if err != nil {
		t.Fatalf("system prompt: %v", err)
	}
	if !strings.HasPrefix(system, "You are a helpful") {
		t.Fatalf("unexpected system prompt: %q", system)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHATCONSOLE_OPENAI_MODEL", "gpt-env")
	t.Setenv("CHATCONSOLE_OPENAI_API_KEY", "env-key")
	t.Setenv("CHATCONSOLE_ASSISTANT_SYSTEM_PROMPT", "talk like a pirate")

	cfg, err := Load(newViper(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		t.Fatalf("client config: %v", err)
	}
	if clientCfg.Model != "gpt-env" || clientCfg.APIKey != "env-key" {
		t.Fatalf("unexpected client config: %+v", clientCfg)
	}
	if clientCfg.SystemPrompt != "talk like a pirate" {
		t.Fatalf("unexpected system prompt: %q", clientCfg.SystemPrompt)
	}
}

func TestValidate(t *testing.T) {
	hot := 2.5
	if err := (Config{OpenAI: OpenAIConfig{Temperature: &hot}}).Validate(); err == nil {
		t.Fatalf("expected temperature error")
	}
	if err := (Config{Assistant: AssistantConfig{Preset: "pirate"}}).Validate(); err == nil {
		t.Fatalf("expected preset error")
	}
	if err := (Config{}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
