// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cardgen/internal/build"
	"github.com/pdiddy/cardgen/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the contact site",
	Long: `Build erases the output directory, copies static assets into it, and
writes {slug}/index.html and {slug}/{First}-{Last}.vcf for every YAML record
in the data directory. A .nojekyll marker is written at the output root.

A missing data directory or template is reported before the output is
touched. An empty data directory prints a warning and exits successfully.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("data-dir", "data", "directory of YAML contact records")
	buildCmd.Flags().String("template", "templates/contact.html", "HTML template for contact pages")
	buildCmd.Flags().String("static-dir", "static", "directory copied into the output root if present")
	buildCmd.Flags().String("output-dir", "output", "output directory (erased on every build)")
	buildCmd.Flags().String("organization", "", "organization used when a record has none")
	buildCmd.Flags().String("website", "", "website used when a record has none")

	rootCmd.AddCommand(buildCmd)
}

// buildFlagKeys maps build flags to viper keys.
var buildFlagKeys = map[string]string{
	"data-dir":     "data_dir",
	"template":     "template",
	"static-dir":   "static_dir",
	"output-dir":   "output_dir",
	"organization": "defaults.organization",
	"website":      "defaults.website",
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, buildFlagKeys); err != nil {
		return err
	}
	_, err := build.Run(buildConfig(), os.Stdout, os.Stderr)
	return err
}

// buildConfig assembles a BuildConfig from flags, environment and config file.
func buildConfig() types.BuildConfig {
	return types.BuildConfig{
		DataDir:      viper.GetString("data_dir"),
		TemplatePath: viper.GetString("template"),
		StaticDir:    viper.GetString("static_dir"),
		OutputDir:    viper.GetString("output_dir"),
		Defaults: types.Defaults{
			Organization: viper.GetString("defaults.organization"),
			Website:      viper.GetString("defaults.website"),
		},
	}
}
