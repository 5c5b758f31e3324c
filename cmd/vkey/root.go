package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zx06/vkey/internal/config"
	"github.com/zx06/vkey/internal/errors"
)

// Build-time variables (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Config holds the resolved configuration
type Config struct {
	FormatStr string
	ConfigStr string
	Resolved  config.Resolved
}

// GlobalConfig holds the global configuration state
var GlobalConfig = &Config{}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vkey",
		Short:         "Manage the application secret key in the OS keyring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// CLI > ENV > Config
			formatSet := cmd.Flags().Changed("format")
			configSet := cmd.Flags().Changed("config")
			if configSet && GlobalConfig.ConfigStr == "" {
				return errors.New(errors.CodeCfgInvalid, "config path is empty", nil)
			}

			r, xe := config.Resolve(config.Options{
				ConfigPath:   GlobalConfig.ConfigStr,
				CLIFormat:    GlobalConfig.FormatStr,
				CLIFormatSet: formatSet,
				EnvFormat:    os.Getenv("VKEY_FORMAT"),
				WorkDir:      "",
				HomeDir:      "",
			})
			if xe != nil {
				return xe
			}
			GlobalConfig.Resolved = r
			GlobalConfig.FormatStr = r.Format
			return nil
		},
	}

	root.PersistentFlags().StringVar(&GlobalConfig.ConfigStr, "config", "", "Config file path (YAML); default: ./vkey.yaml or $HOME/.config/vkey/vkey.yaml")
	root.PersistentFlags().StringVarP(&GlobalConfig.FormatStr, "format", "f", "auto", "Output format: json|yaml|text|auto")

	return root
}
