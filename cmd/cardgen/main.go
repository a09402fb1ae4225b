// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cardgen CLI, which builds a static
// site of contact pages and vCard downloads from YAML records.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cardgen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cardgen CLI.
var rootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "Generate contact pages and vCards from YAML records",
	Long: `cardgen turns a directory of YAML contact records into a static site:
one directory per contact holding an HTML page and a downloadable vCard.

Settings come from flags, CARDGEN_* environment variables (a .env file in
the working directory is loaded first), and cardgen.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv(".env")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cardgen.yaml or ~/.config/cardgen/config.yaml)")

	viper.SetDefault("data_dir", "data")
	viper.SetDefault("template", filepath.Join("templates", "contact.html"))
	viper.SetDefault("static_dir", "static")
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("defaults.organization", types.DefaultOrganization)
	viper.SetDefault("defaults.website", types.DefaultWebsite)
	viper.SetDefault("catalog.db", "contacts.db")
	viper.SetDefault("catalog.max_results", 20)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cardgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cardgen"))
		}
	}

	viper.SetEnvPrefix("CARDGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is ignored.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// bindFlags ties flags of the running command to viper keys (flag name →
// key). Called from RunE so commands sharing a key do not steal each
// other's binding.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag --%s: %w", flag, err)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
