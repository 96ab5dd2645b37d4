package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orbital/pkg/errors"
	"github.com/matzehuels/orbital/pkg/tabular"
)

// tablePath returns flag if set, else the configured table path.
func (c *CLI) tablePath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.Table.Path == "" {
		return "", errors.New(errors.ErrCodeInvalidConfig, "no table configured: pass --table or set [table] path")
	}
	return cfg.Table.Path, nil
}

func (c *CLI) openTable(flag string) (*tabular.PackedTable, error) {
	path, err := c.tablePath(flag)
	if err != nil {
		return nil, err
	}
	return tabular.LoadTableFile(path)
}

// decodeRows lists each field with its code and trait name.
func decodeRows(table *tabular.PackedTable, packed tabular.Uint128) ([][]string, error) {
	schema := table.Schema()
	if n := packed.BitLen(); uint(n) > schema.Bits() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "value has %d bits, schema holds %d", n, schema.Bits())
	}
	codes, err := tabular.Decode(packed, schema)
	if err != nil {
		return nil, err
	}
	traits, err := table.TraitTable().ResolveCodes(schema, codes)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(schema))
	for i, f := range schema {
		lo := schema.Offset(i)
		rows[i] = []string{
			f.Category,
			fmt.Sprintf("%d..%d", lo, lo+f.Width-1),
			fmt.Sprint(codes[i]),
			traits.Get(f.Category),
		}
	}
	return rows, nil
}

// decodeCommand creates the "decode" command.
func (c *CLI) decodeCommand() *cobra.Command {
	var (
		tableFlag string
		byIndex   bool
	)

	cmd := &cobra.Command{
		Use:   "decode <packed>",
		Short: "Decode a packed trait integer against a table",
		Long: `Decode a packed trait integer against a table.

The argument is a decimal integer of up to 128 bits. With --index it is
instead a collection index whose packed value is read from the table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := c.openTable(tableFlag)
			if err != nil {
				return err
			}

			var packed tabular.Uint128
			if byIndex {
				index, err := errors.ParseIndex(args[0])
				if err != nil {
					return err
				}
				if packed, err = table.Packed(index); err != nil {
					return err
				}
			} else if packed, err = tabular.ParseUint128(args[0]); err != nil {
				return err
			}

			rows, err := decodeRows(table, packed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Category", "Bits", "Code", "Trait"}, rows))
			return err
		},
	}

	cmd.Flags().StringVarP(&tableFlag, "table", "t", "", "packed-trait table (default from config)")
	cmd.Flags().BoolVar(&byIndex, "index", false, "treat the argument as a collection index")
	return cmd
}

// packCommand creates the "pack" command.
func (c *CLI) packCommand() *cobra.Command {
	var tableFlag string

	cmd := &cobra.Command{
		Use:   "pack <category=trait>...",
		Short: "Pack trait names into a table integer",
		Long: `Pack trait names into a table integer.

Each argument names a category and one of its traits, e.g. species=Cat.
Categories left out take their first trait (code 0).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := c.openTable(tableFlag)
			if err != nil {
				return err
			}
			packed, err := packTraits(table, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), packed)
			return err
		},
	}

	cmd.Flags().StringVarP(&tableFlag, "table", "t", "", "packed-trait table (default from config)")
	return cmd
}

func packTraits(table *tabular.PackedTable, args []string) (tabular.Uint128, error) {
	schema := table.Schema()
	codes := make([]uint64, len(schema))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		category, name, ok := strings.Cut(arg, "=")
		if !ok {
			return tabular.Uint128{}, errors.New(errors.ErrCodeInvalidInput, "expected category=trait, got %q", arg)
		}
		i := schema.Index(category)
		if i < 0 {
			return tabular.Uint128{}, errors.New(errors.ErrCodeInvalidInput, "unknown category %q", category)
		}
		if seen[category] {
			return tabular.Uint128{}, errors.New(errors.ErrCodeInvalidInput, "category %q given twice", category)
		}
		seen[category] = true
		code, err := table.TraitTable().Code(category, name)
		if err != nil {
			return tabular.Uint128{}, err
		}
		codes[i] = code
	}
	return tabular.Encode(codes, schema)
}

// schemaCommand creates the "schema" command.
func (c *CLI) schemaCommand() *cobra.Command {
	var (
		tableFlag string
		output    string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Draw the packed field layout and layer order",
		Long: `Draw the packed field layout and layer order of a table with Graphviz.

The format follows the output extension (.dot or .svg) unless --format is
given. Without --output the DOT source is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := c.openTable(tableFlag)
			if err != nil {
				return err
			}
			if format == "" {
				format = "dot"
				if strings.EqualFold(filepath.Ext(output), ".svg") {
					format = "svg"
				}
			}

			dot := tabular.ToDOT(table)
			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				if data, err = tabular.RenderSVG(cmd.Context(), dot); err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want dot or svg)", format)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
			}
			printSuccess("Wrote %s schema (%d bits)", format, table.Schema().Bits())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tableFlag, "table", "t", "", "packed-trait table (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot, svg")
	return cmd
}
