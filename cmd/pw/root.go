package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zx06/pw/internal/config"
	"github.com/zx06/pw/internal/errors"
	"github.com/zx06/pw/internal/log"
)

// Build-time variables (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Config holds the resolved configuration
type Config struct {
	FormatStr  string
	ConfigStr  string
	ProfileStr string
	DataStr    string
	Verbose    bool
	Resolved   config.Resolved
}

// GlobalConfig holds the global configuration state
var GlobalConfig = &Config{}

// NewRootCommand creates the root command
func NewRootCommand(sess *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "pw",
		Short:         "Command-line password manager backed by a synced SQLite file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if GlobalConfig.Verbose {
				level = slog.LevelDebug
			}
			sess.logger = log.NewWithLevel(sess.streams.Err, level)

			// CLI > ENV > Config
			formatSet := cmd.Flags().Changed("format")
			profileSet := cmd.Flags().Changed("profile")
			configSet := cmd.Flags().Changed("config")
			dataSet := cmd.Flags().Changed("data")
			if configSet && GlobalConfig.ConfigStr == "" {
				return errors.New(errors.CodeCfgInvalid, "config path is empty", nil)
			}
			if dataSet && GlobalConfig.DataStr == "" {
				return errors.New(errors.CodeCfgInvalid, "data path is empty", nil)
			}

			env, xe := config.LoadEnv()
			if xe != nil {
				return xe
			}
			opts := config.Options{
				ConfigPath:     GlobalConfig.ConfigStr,
				CLIProfile:     GlobalConfig.ProfileStr,
				CLIProfileSet:  profileSet,
				CLIFormat:      GlobalConfig.FormatStr,
				CLIFormatSet:   formatSet,
				CLIDataPath:    GlobalConfig.DataStr,
				CLIDataPathSet: dataSet,
			}
			env.Apply(&opts)

			r, xe := config.Resolve(opts)
			if xe != nil {
				return xe
			}
			GlobalConfig.Resolved = r
			GlobalConfig.FormatStr = r.Format
			GlobalConfig.ProfileStr = r.ProfileName
			sess.logger.Debug("config resolved", "config", r.ConfigPath, "profile", r.ProfileName, "data", r.DataPath)
			return nil
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.CodeCfgInvalid, err.Error(), map[string]any{"command": cmd.Name()}, err)
	})

	root.PersistentFlags().StringVar(&GlobalConfig.ConfigStr, "config", "", "Config file path (YAML); default: ./pw.yaml or $HOME/.config/pw/pw.yaml")
	root.PersistentFlags().StringVar(&GlobalConfig.ProfileStr, "profile", "", "Profile name (config: profiles.<name>)")
	root.PersistentFlags().StringVar(&GlobalConfig.DataStr, "data", "", "Credential database file (overrides profile data_path)")
	root.PersistentFlags().StringVarP(&GlobalConfig.FormatStr, "format", "f", "text", "Output format: text|json|yaml")
	root.PersistentFlags().BoolVarP(&GlobalConfig.Verbose, "verbose", "v", false, "Debug logging to stderr")

	return root
}
