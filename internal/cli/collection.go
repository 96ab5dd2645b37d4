package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orbital/pkg/collection"
	"github.com/matzehuels/orbital/pkg/tabular"
)

// validateCommand creates the "validate" command.
func (c *CLI) validateCommand() *cobra.Command {
	var renderAll bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and collection data",
		Long: `Check the configuration and collection data.

Loading a table validates its schema, every packed value and the template
library, reporting every missing template at once. With --render every index
in the supply is also rendered once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			coll, err := openCollection(cfg)
			if err != nil {
				return err
			}
			printSuccess("Configuration valid")
			printDetail("%s · %s engine · supply %d", coll.Info().Symbol, coll.Info().Engine, coll.Info().Supply)

			if !renderAll {
				return nil
			}
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			spinner := newSpinnerWithContext(ctx, "Rendering...")
			spinner.Start()
			n, err := renderEvery(coll, func(done uint64) error {
				if done%100 == 0 {
					spinner.SetMessage("Rendering %d/%d", done, coll.Info().Supply)
				}
				return ctx.Err()
			})
			if err != nil {
				spinner.StopWithError("Rendering failed after %d indices", n)
				return err
			}
			spinner.StopWithSuccess("Rendered %d indices", n)
			prog.done("rendered collection", "count", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&renderAll, "render", false, "render every index once")
	return cmd
}

// renderEvery renders the attributes and image of every index in supply and
// returns how many succeeded. tick runs before each index and stops the walk
// when it returns an error.
func renderEvery(coll *collection.Collection, tick func(done uint64) error) (uint64, error) {
	supply := coll.Info().Supply
	for i := range supply {
		if err := tick(i); err != nil {
			return i, err
		}
		if _, err := coll.Attributes(i); err != nil {
			return i, fmt.Errorf("index %d: %w", i, err)
		}
		if _, err := coll.Image(i); err != nil {
			return i, fmt.Errorf("index %d: %w", i, err)
		}
	}
	return supply, nil
}

// infoCommand creates the "info" command.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the configured collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			coll, err := openCollection(cfg)
			if err != nil {
				return err
			}
			info := coll.Info()

			fmt.Fprintln(out, StyleTitle.Render(info.Name))
			printKeyValue("Symbol", info.Symbol)
			printKeyValue("Max supply", StyleNumber.Render(fmt.Sprint(info.Supply)))
			printKeyValue("Engine", info.Engine)
			printKeyValue("Fingerprint", coll.Generator().Fingerprint())
			printKeyValue("Cache", cfg.Cache.Backend)

			if g, ok := coll.Generator().(*tabular.Generator); ok {
				table := g.Table()
				printKeyValue("Table", cfg.Table.Path)
				printKeyValue("Templates", cfg.Table.Templates)
				printKeyValue("Packed values", fmt.Sprint(table.Len()))
				printKeyValue("Schema", fmt.Sprintf("%s (%d bits)", table.Schema(), table.Schema().Bits()))
			}
			return nil
		},
	}
}
