package cli

import (
	"errors"

	"chatconsole/internal/llm"
	"chatconsole/internal/todo"
	"chatconsole/internal/tui"

	"github.com/spf13/cobra"
)

func newUICmd(root *Options) *cobra.Command {
	opts := &clientOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive chat and todo console",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, root, opts)
		},
	}
	addClientFlags(cmd, opts)
	return cmd
}

func runUI(cmd *cobra.Command, root *Options, opts *clientOptions) error {
	c, err := loadConsole(cmd, root, opts)
	if err != nil {
		// A missing key leaves sending disabled; the UI shows why.
		var cfgErr *llm.ConfigurationError
		if !errors.As(err, &cfgErr) {
			return err
		}
		root.logger.Debug("chat disabled", "error", err)
	}
	defer c.Close()
	return tui.Run(cmd.Context(), c, todo.New())
}
