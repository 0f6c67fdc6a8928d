package cli

import (
	"github.com/spf13/cobra"

	"relog/internal/config"
)

func newLoginCmd() *cobra.Command {
	var stay bool

	cmd := &cobra.Command{
		Use:   "login <account>",
		Short: "Switch the auto-login account and restart the client",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			acc, err := application.Model().AccountByName(args[0])
			if err != nil {
				return err
			}

			policy := application.Config().CloseAfter()
			exitAfter := !stay &&
				(policy == config.CloseLogin || policy == config.CloseBoth)

			if err := application.Login(acc, exitAfter); err != nil {
				return err
			}
			ok("Logging in as %s", acc.Name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&stay, "stay", false, "Keep running even if the close-after policy says exit")
	return cmd
}
