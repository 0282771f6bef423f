package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	s3sink "github.com/bjoernhaeuser/kafka-connect-storage-cloud"
	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/sinkconfig"
)

var (
	configFile string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "s3sinkcheck",
		Short: "Validate S3 sink connector configurations",
		Long: `Checks an S3 sink connector configuration for cross-field compatibility
(format selections versus output compression, key and header persistence)
and verifies that the destination bucket exists.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "connector settings file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(
		validateCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	var (
		region    string
		endpoint  string
		pathStyle bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a connector settings file",
		Long: `Load a connector settings file, evaluate the compatibility rules, check
the destination bucket, and report every violation grouped by setting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(verbose)
			defer logger.Sync() //nolint:errcheck

			if configFile == "" {
				return errors.New("a connector settings file is required (--config)")
			}

			props, err := loadSettings(configFile)
			if err != nil {
				return err
			}

			cfg, err := sinkconfig.ParseConfig(props)
			if err != nil {
				return err
			}

			opts := []sinkconfig.Option{}
			if region != "" {
				opts = append(opts, s3sink.WithRegion(region))
			}
			if endpoint != "" {
				opts = append(opts, s3sink.WithEndpoint(endpoint))
			}
			if pathStyle {
				opts = append(opts, s3sink.WithForcePathStyle(true))
			}

			client, err := s3sink.New(opts...)
			if err != nil {
				return err
			}

			validator := s3sink.NewValidator(client, s3sink.WithLogger(logger))
			outcome, err := validator.Validate(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("bucket check failed: %w", err)
			}

			if outcome.Valid() {
				fmt.Println("Configuration is valid.")
				return nil
			}

			printOutcome(outcome)
			return errors.New("configuration is invalid")
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region for the bucket check")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "custom S3 endpoint URL")
	cmd.Flags().BoolVar(&pathStyle, "path-style", false, "use path-style S3 addressing")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("s3sinkcheck dev")
		},
	}
}

// printOutcome writes every violation grouped by setting, in stable key order.
func printOutcome(outcome sinkconfig.Outcome) {
	keys := make([]string, 0, len(outcome))
	for key, messages := range outcome {
		if len(messages) > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%s:\n", key)
		for _, message := range outcome.Messages(key) {
			fmt.Printf("  - %s\n", message)
		}
	}
}

func setupLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
