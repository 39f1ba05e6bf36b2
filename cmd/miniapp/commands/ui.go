package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"miniapp/internal/client"
	"miniapp/internal/host"
	"miniapp/internal/tui"
)

// programOptions are passed to the terminal program; tests swap its input
// and output.
var programOptions []tea.ProgramOption

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Run the mini app in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Session(cmd.Context(), func(ctx context.Context, _ client.Capabilities) error {
				hooks := tui.Hooks{ToggleTheme: appCtx.Bridge.ToggleColorScheme}
				if lm, ok := appCtx.Bridge.LocationManager(); ok {
					m := lm.(*host.LocationManager)
					hooks.ToggleLocationAccess = func() { m.SetAccessGranted(!m.IsAccessGranted()) }
				}
				return tui.Run(ctx, appCtx.Screen, hooks, programOptions...)
			})
		},
	}
}
