package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orbital/pkg/pipeline"
)

// exportCommand creates the "export" command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		opts    pipeline.ExportOptions
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a range of indices into a gallery directory",
		Long: `Render a range of indices into a gallery directory.

Each index produces <index>.svg and <index>.json. A manifest.json lists every
file with its BLAKE3 digest. --end defaults to the collection supply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			runner, err := c.openRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			if opts.End == 0 {
				opts.End = runner.Info().Supply
			}

			spinner := newSpinnerWithContext(ctx, "Exporting...")
			opts.OnProgress = func(done, total int) {
				spinner.SetMessage("Exporting %d/%d", done, total)
			}
			prog := newProgress(loggerFromContext(ctx))
			spinner.Start()
			manifest, err := runner.Export(ctx, opts)
			if err != nil {
				spinner.StopWithError("Export failed")
				return err
			}
			spinner.StopWithSuccess("Exported %d tokens (%s)", len(manifest.Tokens), prog.elapsed())
			printFile(filepath.Join(opts.Dir, pipeline.ManifestFile))
			printNextStep("Browse the collection", appName+" browse")
			return nil
		},
	}

	cmd.Flags().Uint64Var(&opts.Start, "start", 0, "first index (inclusive)")
	cmd.Flags().Uint64Var(&opts.End, "end", 0, "last index (exclusive, default supply)")
	cmd.Flags().StringVarP(&opts.Dir, "output", "o", "gallery", "output directory")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "concurrent renders (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the document cache")
	return cmd
}
