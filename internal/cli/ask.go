package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"chatconsole/internal/console"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusOK       = color.New(color.FgGreen)
	statusCanceled = color.New(color.FgYellow)
	statusFailed   = color.New(color.FgRed)
)

type askOptions struct {
	clientOptions
	InputFile string
}

func newAskCmd(root *Options) *cobra.Command {
	opts := &askOptions{}
	cmd := &cobra.Command{
		Use:   "ask [prompt...]",
		Short: "Send one prompt and print the response",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, root, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.InputFile, "file", "F", "", "prompt file, use -F- for stdin")
	addClientFlags(cmd, &opts.clientOptions)
	return cmd
}

func runAsk(cmd *cobra.Command, root *Options, opts *askOptions, args []string) error {
	input, err := readInput(args, opts.InputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	c, err := loadConsole(cmd, root, &opts.clientOptions)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	root.logger.Debug("sending prompt", "chars", len(input))
	res := c.Send(ctx, input)
	root.logger.Debug("request finished", "request_id", res.RequestID, "status", res.Status)

	errOut := cmd.ErrOrStderr()
	switch res.Status {
	case console.StatusDone:
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.Response); err != nil {
			return err
		}
		_, _ = statusOK.Fprintln(errOut, res.Message)
		return nil
	case console.StatusCanceled:
		_, _ = statusCanceled.Fprintln(errOut, res.Message)
		return nil
	case console.StatusFailed:
		_, _ = statusFailed.Fprintln(errOut, res.Message)
		return res.Err
	default:
		return errors.New(res.Message)
	}
}

func readInput(args []string, inputFile string, stdin io.Reader) (string, error) {
	if inputFile != "" && len(args) > 0 {
		return "", fmt.Errorf("prompt args and -F are mutually exclusive")
	}
	if inputFile == "" {
		if len(args) == 0 {
			return "", fmt.Errorf("missing prompt: provide args or -F")
		}
		return strings.Join(args, " "), nil
	}
	if inputFile == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return trimTrailingNewline(string(data)), nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return trimTrailingNewline(string(data)), nil
}

func trimTrailingNewline(value string) string {
	return strings.TrimRight(value, "\r\n")
}
