package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orbital/pkg/errors"
)

// browseCommand creates the "browse" command.
func (c *CLI) browseCommand() *cobra.Command {
	var start uint64

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Step through the collection in the terminal",
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
			if err := errors.ValidateIndex(start, coll.Info().Supply); err != nil {
				return err
			}

			p := tea.NewProgram(NewBrowseModel(coll, start), tea.WithContext(cmd.Context()), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(BrowseModel); ok {
				printInfo("Last viewed #%d", m.Index)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&start, "start", 0, "index to open at")
	return cmd
}
