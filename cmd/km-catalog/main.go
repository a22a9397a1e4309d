// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the km-catalog CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the km-catalog CLI.
var rootCmd = &cobra.Command{
	Use:   "km-catalog",
	Short: "Extract translatable text from knowledge-model documents",
	Long: `km-catalog reads a flat knowledge-model document (chapters, questions,
choices, answers, references, tags, metrics, phases, resource pages) and
produces a gettext POT translation template: one msgid per unique text,
with one location comment per occurrence.

The walk is a single deterministic pass; the catalog is written only after
the whole document traverses cleanly. Use validate to audit a document's
identifier references and inspect to summarize its contents.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./km-catalog.yaml or ~/.config/km-catalog/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("km-catalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "km-catalog"))
		}
	}

	viper.SetEnvPrefix("KM_CATALOG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: an explicitly set flag wins, then
// the config value under key, then the flag's default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
