package cmd

import (
	"crowdfund/internal/config"
	"crowdfund/pkg/log"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	envFile string
	verbose bool
)

// Start builds the command tree and runs the command named on the command
// line.
func Start() error {
	rootCmd := &cobra.Command{
		Use:           "crowdfund",
		Short:         "Crowdfunding contract client",
		Long:          `Connects a wallet to the CrowdFunding contract to publish campaigns, list campaigns and donations, and donate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnvFiles(envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log at debug level")

	rootCmd.AddCommand(
		newServeCmd(),
		newCampaignsCmd(),
		newDonationsCmd(),
		newDonateCmd(),
		newCreateCmd(),
	)

	return rootCmd.Execute()
}

func newLogger() *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return log.NewZapLogger("crowdfund", level)
}

func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
