package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"relog/internal/config"
	"relog/internal/steam"
)

func newLaunchCmd() *cobra.Command {
	var accountName string
	var stay bool

	cmd := &cobra.Command{
		Use:   "launch <appid>",
		Short: "Launch a game under its assigned account",
		Long: `Switches to the account assigned to the game, restarting the client if
another account is active, then starts the game. The first launch of a
game assigns it the current account; override with --account or the
assign command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			appID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid app id %q", args[0])
			}
			game, found := application.Model().App(appID)
			if !found {
				return fmt.Errorf("app %d is not installed", appID)
			}

			var acc steam.Account
			if accountName != "" {
				acc, err = application.Model().AccountByName(accountName)
			} else {
				acc, err = application.GameAccount(appID)
			}
			if err != nil {
				return err
			}

			policy := application.Config().CloseAfter()
			closeAfter := !stay &&
				(policy == config.CloseLaunch || policy == config.CloseBoth)

			if err := application.LaunchGame(acc, appID, closeAfter); err != nil {
				return err
			}
			ok("Launching %s as %s", game.Name, acc.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&accountName, "account", "", "Launch under this account instead of the assigned one")
	cmd.Flags().BoolVar(&stay, "stay", false, "Keep running even if the close-after policy says exit")
	return cmd
}
