// refframes orrery — interactive top-down solar system view.
package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/astrodyn-tools/refframes/internal/core/logger"
	"github.com/astrodyn-tools/refframes/internal/timeutil"
	"github.com/astrodyn-tools/refframes/internal/tui"
)

func NewOrreryCmd() *cobra.Command {
	var epochStr string

	cmd := &cobra.Command{
		Use:   "orrery",
		Short: "Launch the interactive terminal orrery",
		Long: "Plot the planets' heliocentric positions on a top-down ecliptic " +
			"projection, advancing one day per second. Arrow keys step the clock, " +
			"space pauses, m cycles the radial scale.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			src, err := rt.RequireSource()
			if err != nil {
				return err
			}

			var epoch time.Time
			if epochStr != "" {
				epoch, err = timeutil.ParseEpoch(epochStr)
				if err != nil {
					return err
				}
			}

			// Forward log lines into the footer while the TUI owns the terminal.
			logCh := make(chan string, 64)
			logger.SetTUISink(logCh)
			defer logger.SetTUISink(nil)

			model := tui.New(tui.Config{
				Source:     src,
				Log:        rt.Log,
				Epoch:      epoch,
				Truncation: rt.Config.CacheTruncation(),
				LogCh:      logCh,
			})

			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&epochStr, "epoch", "e", "", "Initial epoch (defaults to now)")
	return cmd
}
