// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/interior-site/interior-site/internal/config"
)

const defaultConfigPath = "./etc/"

var (
	configPath string // Path to the configuration directory
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:   "interior-site",
		Short: "interior-site serves the website of an interior design studio",
		Long: `interior-site serves the website of an interior design studio:
portfolio, design proposals and studio settings through a JSON API,
guarded by a shared secret for every write, plus uploaded images.`,
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		defaultConfigPath,
		"Directory holding main.toml",
	)
}

// loadConfig reads the configuration of configPath into cfg.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.ReadConfig(configPath)

	return err
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
