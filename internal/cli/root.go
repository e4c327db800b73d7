package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"chatconsole/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Options struct {
	Config  string
	EnvFile string
	Verbose bool

	viper  *viper.Viper
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	opts := &Options{
		viper:  viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	config.SetDefaults(opts.viper)
	root := &cobra.Command{
		Use:          "chatconsole",
		Short:        "chatconsole - chat with an OpenAI model and keep a todo list",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(
		&opts.Config,
		"config",
		"",
		"config file (default: ./chatconsole.yaml)",
	)
	root.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file loaded before config")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(newAskCmd(opts))
	root.AddCommand(newUICmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func initConfig(cmd *cobra.Command, opts *Options) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if opts.EnvFile != "" {
		// Variables already in the environment win over the file.
		if err := godotenv.Load(opts.EnvFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load %s: %w", opts.EnvFile, err)
			}
		} else {
			opts.logger.Debug("loaded env file", "path", opts.EnvFile)
		}
	}

	v := opts.viper
	if opts.Config != "" {
		v.SetConfigFile(opts.Config)
	} else {
		v.SetConfigName("chatconsole")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/chatconsole")
	}

	v.SetEnvPrefix("CHATCONSOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			opts.logger.Debug("no config file found")
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	opts.logger.Debug("loaded config file", "path", v.ConfigFileUsed())
	return nil
}
