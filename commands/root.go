package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"phone-loan/config"
)

var (
	envFile string
	cfg     config.Config
	logger  *slog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "phone-loan",
		Short:         "Device financing eligibility and application service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if envFile != "" {
				cfg, err = config.Load(envFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
			slog.SetDefault(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")

	root.AddCommand(serveCmd(), quoteCmd())
	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		return err
	}
	return nil
}
