package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"hanzi-cli/internal/publish"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "show <n>",
		Short: "Show the entry at list position n (1-based) as Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || n < 1 {
				return fmt.Errorf("invalid entry number %q: expected a positive integer", args[0])
			}
			d, err := loadDictionary(app)
			if err != nil {
				return err
			}
			md, err := publish.RenderEntryMarkdown(d, n)
			if err != nil {
				return err
			}
			if raw {
				_, err = io.WriteString(cmd.OutOrStdout(), md)
				return err
			}
			out, err := publish.RenderTerminal(md, width, markdownStyle(app.Config.TUI.Theme))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print Markdown source instead of rendering it")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")
	return cmd
}

func markdownStyle(theme string) string {
	if strings.EqualFold(strings.TrimSpace(theme), "light") {
		return "light"
	}
	return "dark"
}
