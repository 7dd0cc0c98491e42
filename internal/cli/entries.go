package cli

import (
	"hanzi-cli/internal/format"

	"github.com/spf13/cobra"
)

func newEntriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "entries",
		Short: "Print every dictionary entry (json|edn)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDictionary(app)
			if err != nil {
				return err
			}
			return format.WriteEntries(cmd.OutOrStdout(), d.Entries(), app.Config.Format, app.Config.Pretty)
		},
	}
}
