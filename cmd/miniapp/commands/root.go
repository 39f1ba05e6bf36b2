package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"miniapp/internal/app"
	"miniapp/internal/config"
	"miniapp/internal/logging"
)

var (
	cfgPath    string
	home       string
	passphrase string
	verbose    bool

	appCtx *app.Wire
	logger *zap.Logger
)

// Execute runs the CLI with ctx as the root context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Registering the flags resets the
// package flag variables to their defaults.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "miniapp",
		Short:        "Mini app capability demo on a development host",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if passphrase != "" {
				cfg.Host.Passphrase = passphrase
			}
			if home == "" {
				home = cfg.Host.Home
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".miniapp")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if err := config.ValidateHost(cfg); err != nil {
				return err
			}

			// The terminal UI owns the screen; its logs go to a file.
			var sinks []string
			if cmd.Name() == "ui" {
				sinks = []string{filepath.Join(home, "miniapp.log")}
			}
			logger, err = logging.New(cfg.Logging, verbose, sinks...)
			if err != nil {
				return err
			}

			appCtx, err = app.NewWire(app.Config{Home: home, Host: cfg.Host, Log: logger})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.miniapp)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting secure storage (or "+config.EnvPassphrase+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(uiCmd(), deviceCmd(), secureCmd(), locationCmd(), fullscreenCmd())
	return root
}

// errUnavailable reports a control the client disabled at startup.
type errUnavailable struct{ what string }

func (e errUnavailable) Error() string {
	return fmt.Sprintf("%s is not available on this host", e.what)
}
