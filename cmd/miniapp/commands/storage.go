package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"miniapp/internal/domain"
)

// panel names the elements of one storage panel.
type panel struct {
	name                    string
	key, value, result      domain.ElementID
	set, get, remove, clear domain.ElementID
}

var (
	devicePanel = panel{
		name: "device storage",
		key:  domain.DSKey, value: domain.DSValue, result: domain.DSResult,
		set: domain.DSSetItem, get: domain.DSGetItem, remove: domain.DSRemoveItem, clear: domain.DSClearAll,
	}
	securePanel = panel{
		name: "secure storage",
		key:  domain.SSKey, value: domain.SSValue, result: domain.SSResult,
		set: domain.SSSetItem, get: domain.SSGetItem, remove: domain.SSRemoveItem, clear: domain.SSClearAll,
	}
)

func (p panel) commands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "set <key> <value>",
			Short: "Store a value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				in := map[domain.ElementID]string{p.key: args[0], p.value: args[1]}
				return press(cmd.Context(), cmd.OutOrStdout(), p.name, in, p.set, p.result)
			},
		},
		{
			Use:   "get <key>",
			Short: "Read a value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return press(cmd.Context(), cmd.OutOrStdout(), p.name, map[domain.ElementID]string{p.key: args[0]}, p.get, p.result)
			},
		},
		{
			Use:   "remove <key>",
			Short: "Remove a value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return press(cmd.Context(), cmd.OutOrStdout(), p.name, map[domain.ElementID]string{p.key: args[0]}, p.remove, p.result)
			},
		},
		{
			Use:   "clear",
			Short: "Remove every value",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return press(cmd.Context(), cmd.OutOrStdout(), p.name, nil, p.clear, p.result)
			},
		},
	}
}

func deviceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Non-persistent device storage",
	}
	cmd.AddCommand(devicePanel.commands()...)
	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Drop device storage, as the host does when it reclaims space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Device.Purge(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Device storage purged.")
			return nil
		},
	})
	return cmd
}

func secureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secure",
		Short: "Encrypted secure storage (needs a passphrase)",
	}
	cmd.AddCommand(securePanel.commands()...)
	cmd.AddCommand(
		&cobra.Command{
			Use:   "restore <key>",
			Short: "Restore a value from the backup",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				in := map[domain.ElementID]string{domain.SSKey: args[0]}
				return press(cmd.Context(), cmd.OutOrStdout(), securePanel.name, in, domain.SSRestoreItem, domain.SSResult)
			},
		},
		&cobra.Command{
			Use:   "reset-local",
			Short: "Forget local secure storage and keep the backup, as on a new device",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if appCtx.Secure == nil {
					return errUnavailable{what: securePanel.name}
				}
				if err := appCtx.Secure.ResetLocal(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Local secure storage reset. Backed up items can be restored.")
				return nil
			},
		},
	)
	return cmd
}
