package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

type cli struct {
	configPath string
	config     *Config
}

func newRootCmd() *cobra.Command {
	c := &cli{
		config: &defaultConfig,
	}

	rootCmd := &cobra.Command{
		Use:           "loaderv4",
		Short:         "Build and inspect Solana Loader v4 instructions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(c.configPath, cmd.Flags())
			if err != nil {
				return err
			}

			configureLogger(config)
			c.config = config
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "configuration file path")
	rootCmd.PersistentFlags().String("log-level", defaultConfig.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("pretty", defaultConfig.Pretty, "indent JSON output")

	rootCmd.AddCommand(
		c.newBuildCmd(),
		c.newParseCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
