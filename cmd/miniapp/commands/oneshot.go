package commands

import (
	"context"
	"fmt"
	"io"

	"miniapp/internal/client"
	"miniapp/internal/domain"
)

// press fills inputs, presses button and prints the given elements once the
// host has answered. A disabled button prints the first element, which then
// holds the client's "not available" message.
func press(ctx context.Context, out io.Writer, what string, inputs map[domain.ElementID]string, button domain.ElementID, show ...domain.ElementID) error {
	return appCtx.Session(ctx, func(context.Context, client.Capabilities) error {
		for id, v := range inputs {
			appCtx.Screen.SetValue(id, v)
		}
		if !appCtx.Screen.Click(button) {
			fmt.Fprintln(out, appCtx.Screen.Text(show[0]))
			return errUnavailable{what: what}
		}
		appCtx.Settle()
		for _, id := range show {
			fmt.Fprintln(out, appCtx.Screen.Text(id))
		}
		return nil
	})
}
