package cli

import (
	"strings"

	"chatconsole/internal/config"
	"chatconsole/internal/console"
	"chatconsole/internal/llm"

	"github.com/spf13/cobra"
)

type clientOptions struct {
	Model       string
	Preset      string
	System      string
	Temperature float64
}

func addClientFlags(cmd *cobra.Command, opts *clientOptions) {
	cmd.Flags().StringVar(&opts.Model, "model", "", "override model name")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "system prompt preset (guide, persona)")
	cmd.Flags().StringVar(&opts.System, "system", "", "override system prompt text")
	cmd.Flags().Float64Var(&opts.Temperature, "temperature", 0, "sampling temperature (0-2)")
}

// loadConsole resolves config and flags into a console. A configuration
// failure is returned so the caller can decide whether it is fatal; the
// console is still usable for reporting it.
func loadConsole(cmd *cobra.Command, opts *Options, flags *clientOptions) (*console.Console, error) {
	cfg, err := config.Load(opts.viper)
	if err != nil {
		return console.New(nil, err), err
	}
	cfg.OpenAI.Model = firstNonEmpty(flags.Model, cfg.OpenAI.Model)
	cfg.Assistant.Preset = firstNonEmpty(flags.Preset, cfg.Assistant.Preset)
	cfg.Assistant.SystemPrompt = firstNonEmpty(flags.System, cfg.Assistant.SystemPrompt)
	if cmd.Flags().Changed("temperature") {
		temperature := flags.Temperature
		cfg.OpenAI.Temperature = &temperature
	}
	if err := cfg.Validate(); err != nil {
		return console.New(nil, err), err
	}

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return console.New(nil, err), err
	}
	client, err := llm.NewChatClient(clientCfg)
	if err != nil {
		opts.logger.Debug("chat client unavailable", "error", err)
		return console.New(nil, err), err
	}
	opts.logger.Debug("chat client ready", "model", client.Model(), "base_url", clientCfg.BaseURL)
	return console.New(client, nil), nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
