package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zx06/vkey/internal/errors"
	"github.com/zx06/vkey/internal/output"
	"github.com/zx06/vkey/internal/secret"
)

// NewStoreCommand creates the store command
func NewStoreCommand(w *output.Writer, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "store [value]",
		Short: "Store the secret key in the OS keyring (overwrites any existing key)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			var value string
			if len(args) == 1 {
				value = args[0]
			} else {
				v, xe := readSecretValue(os.Stdin, cmd.ErrOrStderr())
				if xe != nil {
					return xe
				}
				value = v
			}
			if value == "" {
				return errors.New(errors.CodeCfgInvalid, "secret key value is empty", nil)
			}

			if xe := secret.Store(value, secret.Options{Logger: logger}); xe != nil {
				return xe
			}
			return w.WriteOK(format, map[string]any{"stored": true})
		},
	}
}

// NewLoadCommand creates the load command
func NewLoadCommand(w *output.Writer, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the secret key from the OS keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			value, ok, xe := secret.Load(secret.Options{Logger: logger})
			if xe != nil {
				return xe
			}
			// 不存在是正常结果：返回 present=false，退出码 0
			if !ok {
				return w.WriteOK(format, map[string]any{"present": false})
			}
			return w.WriteOK(format, map[string]any{"present": true, "value": value})
		},
	}
}

// NewClearCommand creates the clear command
func NewClearCommand(w *output.Writer, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the secret key from the OS keyring (no-op if absent)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			if xe := secret.Clear(secret.Options{Logger: logger}); xe != nil {
				return xe
			}
			return w.WriteOK(format, map[string]any{"cleared": true})
		},
	}
}

// NewStatusCommand creates the status command
func NewStatusCommand(w *output.Writer, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether a secret key is stored, without revealing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			_, ok, xe := secret.Load(secret.Options{Logger: logger})
			if xe != nil {
				return xe
			}
			return w.WriteOK(format, map[string]any{"present": ok})
		},
	}
}
