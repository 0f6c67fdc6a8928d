package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts saved in this Steam install",
		RunE: func(_ *cobra.Command, _ []string) error {
			accounts := application.Model().Accounts()
			if len(accounts) == 0 {
				warn("No saved logins found under %s", application.Model().Path())
				return nil
			}

			current, err := application.CurrentAccount()
			if err != nil {
				current.Name = ""
			}

			for _, acc := range accounts {
				marker := " "
				if acc.Name == current.Name {
					marker = color.GreenString("*")
				}
				id64 := int64(0)
				if acc.ID != nil {
					id64 = acc.ID.ID64
				}
				fmt.Printf("%s %-24s %d  (%d games)\n", marker, acc.Name, id64, len(acc.Games))
			}
			return nil
		},
	}
}

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the account the client will auto-login as",
		RunE: func(_ *cobra.Command, _ []string) error {
			acc, err := application.CurrentAccount()
			if err != nil {
				return err
			}
			remember, err := application.Model().RememberPassword()
			if err != nil {
				return err
			}

			fmt.Println("account:", acc.Name)
			if acc.ID != nil {
				fmt.Println("steamid:", acc.ID.ID64)
			}
			fmt.Println("remember password:", remember)
			return nil
		},
	}
}
