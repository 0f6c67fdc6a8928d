package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var closeAfter string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := application.Config()

			if closeAfter != "" {
				if err := cfg.SetCloseAfter(closeAfter); err != nil {
					return err
				}
				if err := cfg.Save(); err != nil {
					return err
				}
				ok("close-after set to %s", closeAfter)
				return nil
			}

			fmt.Println("close-after:", cfg.CloseAfter())
			fmt.Println("debug logging:", cfg.DebugLogging())
			if dir := cfg.SteamInstallDir(); dir != "" {
				fmt.Println("steam dir:", dir)
			}
			fmt.Println("favorites:", len(cfg.Favorites()))
			return nil
		},
	}
	cmd.Flags().StringVar(&closeAfter, "close-after", "",
		"When this program should exit: none, login, launch, or both")
	return cmd
}
