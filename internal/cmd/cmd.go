// Package cmd is the command line interface of the ponto server.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/logging"
)

// Run the main CLI command with the given args. The args should not contain
// the name of the binary (ex: os.Args[1:]).
func Run(ctx context.Context, args ...string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "ponto",
		Short:             "Ponto Jovem time tracking server",
		Version:           internal.FullVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}
			return logging.SetLevel(level)
		},
	}

	rootCmd.AddCommand(newServerCmd())

	rootCmd.PersistentFlags().String("log-level", "info", "Show logs when running the command [error, warn, info, debug]")
	return rootCmd
}
