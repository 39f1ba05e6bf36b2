package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"miniapp/internal/config"
	"miniapp/internal/launcher"
	"miniapp/internal/logging"
	"miniapp/internal/telegram"
)

// exitConfig is EX_CONFIG from sysexits.h.
const exitConfig = 78

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and maps its error to an exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	case errors.Is(err, config.ErrInvalid):
		fmt.Fprintf(stderr, "launcher: %v\nSet bot_token and launch_url in the config file or via %s and %s.\n",
			err, config.EnvBotToken, config.EnvLaunchURL)
		return exitConfig
	default:
		fmt.Fprintln(stderr, "launcher:", err)
		return 1
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgPath string
		verbose bool
	)
	root := &cobra.Command{
		Use:           "launcher",
		Short:         "Bot that answers /start with a button opening the mini app",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(runCmd(&cfgPath, &verbose), schemaCmd())
	return root
}

func runCmd(cfgPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			// Validate before anything touches the network.
			if err := config.ValidateLauncher(cfg.Launcher); err != nil {
				return err
			}
			log, err := logging.New(cfg.Logging, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			client := telegram.NewClient(cfg.Launcher.APIBaseURL, cfg.Launcher.BotToken,
				telegram.WithTimeout(cfg.Launcher.Timeout+cfg.Launcher.Polling.Timeout))
			bot := telegram.NewBot(client, log)

			n, err := launcher.New(cfg.Launcher, bot, log)
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				me, err := client.GetMe(ctx)
				if err != nil {
					log.Warn("getMe failed", zap.Error(err))
					return nil
				}
				log.Info("bot identity", zap.String("username", me.Username), zap.Int64("id", me.ID))
				return nil
			})
			g.Go(func() error { return launcher.Run(ctx, cfg.Launcher, bot, log) })
			n.Announce()

			return g.Wait()
		},
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}
