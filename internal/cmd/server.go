package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/gitCabezas/PontoJovem/internal/server"
)

func newServerCmd() *cobra.Command {
	var configFilename string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the ponto server",
		RunE: func(cmd *cobra.Command, args []string) error {
			options := defaultServerOptions()

			if configFilename != "" {
				if err := loadConfigFile(configFilename, &options); err != nil {
					return err
				}
			}
			applyEnvOverrides(&options)

			srv, err := server.New(options)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			srv.SetupBackgroundJobs(cmd.Context())
			return runServer(cmd.Context(), srv)
		},
	}

	cmd.Flags().StringVarP(&configFilename, "config-file", "f", "", "Server configuration file")
	return cmd
}

func defaultServerOptions() server.Options {
	return server.Options{
		DBFile: "ponto.db",
		Addr: server.ListenerOptions{
			HTTP:    ":3000",
			Metrics: ":9090",
		},
		API: server.APIOptions{
			RequestTimeout: time.Minute,
		},
	}
}

func loadConfigFile(filename string, options *server.Options) error {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(contents, options); err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	return nil
}

// applyEnvOverrides lets deploy environments set the values that should not
// live in a config file.
func applyEnvOverrides(options *server.Options) {
	setFromEnv := func(target *string, name string) {
		if value := os.Getenv(name); value != "" {
			*target = value
		}
	}

	setFromEnv(&options.DBConnectionString, "PONTO_SERVER_DB_CONNECTION_STRING")
	setFromEnv(&options.SMTPServer, "PONTO_SERVER_SMTP_SERVER")
	setFromEnv(&options.SMTPUsername, "PONTO_SERVER_SMTP_USERNAME")
	setFromEnv(&options.SMTPPassword, "PONTO_SERVER_SMTP_PASSWORD")
	setFromEnv(&options.Storage.AccessKeyID, "PONTO_SERVER_STORAGE_ACCESS_KEY_ID")
	setFromEnv(&options.Storage.SecretAccessKey, "PONTO_SERVER_STORAGE_SECRET_ACCESS_KEY")
}

// shim for testing
var runServer = func(ctx context.Context, srv *server.Server) error {
	return srv.Run(ctx)
}
