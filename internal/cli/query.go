package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orbital/pkg/errors"
)

// Attribute output formats.
const (
	formatJSON  = "json"
	formatTable = "table"
	formatCBOR  = "cbor"
)

// attributesCommand creates the "attributes" command.
func (c *CLI) attributesCommand() *cobra.Command {
	var (
		format  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "attributes <index>",
		Short: "Print the attribute document of an index",
		Long: `Print the attribute document of an index.

Formats:
  json   compact JSON in generator key order (default)
  table  human-readable trait table
  cbor   deterministic CBOR bytes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := errors.ParseIndex(args[0])
			if err != nil {
				return err
			}
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

			w := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				data, hit, err := runner.Attributes(ctx, index)
				if err != nil {
					return err
				}
				loggerFromContext(ctx).Debug("attributes", "index", index, "bytes", len(data), "cached", hit)
				_, err = fmt.Fprintf(w, "%s\n", data)
				return err
			case formatTable:
				set, err := runner.Collection.Attributes(index)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, renderTable([]string{"Trait", "Value"}, attributeRows(set)))
				return err
			case formatCBOR:
				set, err := runner.Collection.Attributes(index)
				if err != nil {
					return err
				}
				data, err := set.MarshalCBOR()
				if err != nil {
					return err
				}
				_, err = w.Write(data)
				return err
			}
			return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want json, table or cbor)", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, table, cbor")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the document cache")
	return cmd
}

// renderCommand creates the "render" command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render <index>",
		Short: "Render the SVG image of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := errors.ParseIndex(args[0])
			if err != nil {
				return err
			}
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

			svg, hit, err := runner.Image(ctx, index)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(svg)
				return err
			}
			if err := os.WriteFile(output, svg, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
			}
			printSuccess("Rendered #%d", index)
			printRenderStats("svg", len(svg), hit)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the document cache")
	return cmd
}
