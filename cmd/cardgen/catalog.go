// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cardgen/internal/catalog"
	"github.com/pdiddy/cardgen/internal/normalize"
	"github.com/pdiddy/cardgen/internal/records"
	"github.com/pdiddy/cardgen/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the contact catalog (index, lookup, export)",
	Long: `Catalog keeps normalized contacts in a local SQLite database so they can
be searched from the command line or exported as YAML or JSON.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Load and normalize all records into the catalog",
	Long: `Index reads every YAML record in the data directory, normalizes it the
same way build does, and replaces the catalog contents with the result.`,
	RunE: runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"data-dir": "data_dir",
		"db":       "catalog.db",
	}); err != nil {
		return err
	}

	recs, err := records.Load(viper.GetString("data_dir"))
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintf(os.Stderr, "warning: no contact records found in %s\n", viper.GetString("data_dir"))
	}

	defaults := types.Defaults{
		Organization: viper.GetString("defaults.organization"),
		Website:      viper.GetString("defaults.website"),
	}
	contacts := make([]types.Contact, len(recs))
	for i, r := range recs {
		contacts[i] = normalize.Contact(r, defaults)
	}

	store, err := catalog.Open(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Index(context.Background(), contacts)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Indexed %d contact(s) into %s (%d previous row(s) replaced)\n",
		summary.Indexed, viper.GetString("catalog.db"), summary.Removed)
	return nil
}

// --- lookup subcommand ---

var catalogLookupCmd = &cobra.Command{
	Use:   "lookup [query]",
	Short: "Search the catalog by name, organization, title, or email",
	RunE:  runCatalogLookup,
}

func runCatalogLookup(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{"db": "catalog.db"}); err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := catalog.Open(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Lookup(context.Background(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}
	return formatLookupOutput(os.Stdout, entries, jsonOutput)
}

func formatLookupOutput(w io.Writer, entries []catalog.Entry, jsonOutput bool) error {
	if jsonOutput {
		if entries == nil {
			entries = []catalog.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No contacts found.")
		return nil
	}

	fmt.Fprintf(w, "%-24s  %-28s  %-24s  %s\n", "Slug", "Name", "Organization", "Email")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, e := range entries {
		fmt.Fprintf(w, "%-24s  %-28s  %-24s  %s\n",
			truncate(e.Slug, 24), truncate(e.FullName, 28), truncate(e.Organization, 24), e.Email)
	}
	fmt.Fprintf(w, "\n%d contact(s)\n", len(entries))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	RunE:  runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{"db": "catalog.db"}); err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	store, err := catalog.Open(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	switch format {
	case "yaml", "":
		if out == "" {
			out = "contacts.yaml"
		}
		err = store.ExportYAML(ctx, out)
	case "json":
		if out == "" {
			out = "contacts.json"
		}
		err = store.ExportJSON(ctx, out)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Exported to %s\n", out)
	return nil
}

// --- shared helpers ---

func catalogConfig() types.CatalogConfig {
	return types.CatalogConfig{
		DBPath:     viper.GetString("catalog.db"),
		MaxResults: viper.GetInt("catalog.max_results"),
	}
}

func init() {
	catalogIndexCmd.Flags().String("data-dir", "data", "directory of YAML contact records")
	catalogIndexCmd.Flags().String("db", "contacts.db", "catalog database file")

	catalogLookupCmd.Flags().String("db", "contacts.db", "catalog database file")
	catalogLookupCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogLookupCmd.Flags().Bool("json", false, "output results as JSON")

	catalogExportCmd.Flags().String("db", "contacts.db", "catalog database file")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("out", "", "output file (default contacts.yaml or contacts.json)")

	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogLookupCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
