package cli

import (
	"strings"

	"hanzi-cli/internal/config"
	"hanzi-cli/internal/store"
	"hanzi-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigFile string
	Config     *config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "hanzi",
		Short:         "Browse a Chinese character dictionary in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Browse ./word.json (up/down to move, q to quit)
  hanzi

  # Browse another file
  hanzi --data ~/dict/word.json

  # Print the dictionary as EDN
  hanzi entries --format edn --pretty

  # Show the first entry
  hanzi show 1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigFile, cmd.Flags())
		if err != nil {
			return err
		}
		app.Config = cfg
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigFile, "config", "", "Config file (default: hanzi.yaml in . or ~/.config/hanzi)")
	pf.String("data", store.DefaultPath, "Path to the dictionary JSON file (env HANZI_DATA)")
	pf.String("format", "json", "Output format for scriptable commands (json|edn)")
	pf.Bool("pretty", false, "Pretty-print scriptable output")
	pf.String("theme", "auto", "Background theme for the browser (auto|light|dark)")
	pf.String("glyphs", "ascii", "Glyph set for the selection marker (ascii|unicode)")
	pf.String("debug-log", "", "Append debug logs to this file")

	cmd.AddCommand(newEntriesCmd(app))
	cmd.AddCommand(newShowCmd(app))

	return cmd
}

func runTUI(app *App) error {
	d, err := loadDictionary(app)
	if err != nil {
		return err
	}
	return tui.Run(d, tui.Options{
		Theme:    app.Config.TUI.Theme,
		Glyphs:   app.Config.TUI.Glyphs,
		DebugLog: app.Config.TUI.DebugLog,
	})
}

// loadDictionary runs before any terminal mode switch so load errors are
// printed on a normal screen.
func loadDictionary(app *App) (*store.Dictionary, error) {
	return store.Load(app.Config.Data)
}
