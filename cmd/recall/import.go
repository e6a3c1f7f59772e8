package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/recall/internal/importer"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [path...]",
		Short: "Import Q/A markdown decks",
		Long: `Import Q/A markdown decks from the given files or directories.
Without arguments, every source in the import configuration is synced and imported.
Cards that were imported before keep their schedule.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			imp := importer.NewImporter(a.cards, nil)
			ctx := cmd.Context()

			var total importer.Result
			if len(args) == 0 {
				total, err = imp.ImportSources(ctx, a.cfg.Import)
				if err != nil {
					return err
				}
			}
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("os.Stat() > %w", err)
				}
				var result importer.Result
				if info.IsDir() {
					result, err = imp.ImportDir(ctx, path)
				} else {
					result, err = imp.ImportFile(ctx, path)
				}
				if err != nil {
					return err
				}
				total.Files += result.Files
				total.Notes += result.Notes
				total.Created += result.Created
				total.Skipped += result.Skipped
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d files: %d new cards, %d unchanged\n",
				total.Files, total.Created, total.Skipped)
			return nil
		},
	}
}
