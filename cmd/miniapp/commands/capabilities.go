package commands

import (
	"github.com/spf13/cobra"

	"miniapp/internal/domain"
)

func locationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "location",
		Short: "Request one location sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return press(cmd.Context(), cmd.OutOrStdout(), "location", nil, domain.RequestLocation,
				domain.LocationStatus, domain.Latitude, domain.Longitude, domain.Altitude, domain.Accuracy)
		},
	}
}

func fullscreenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fullscreen",
		Short: "Fullscreen mode",
	}
	show := []domain.ElementID{
		domain.FullscreenStatus,
		domain.SafeAreaTop, domain.SafeAreaBottom,
		domain.ContentSafeAreaTop, domain.ContentSafeAreaBottom,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "enter",
			Short: "Request fullscreen mode",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return press(cmd.Context(), cmd.OutOrStdout(), "fullscreen", nil, domain.RequestFullscreen, show...)
			},
		},
		&cobra.Command{
			Use:   "exit",
			Short: "Leave fullscreen mode",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return press(cmd.Context(), cmd.OutOrStdout(), "fullscreen", nil, domain.ExitFullscreen, show...)
			},
		},
	)
	return cmd
}
