package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseAppID(arg string) (int, error) {
	appID, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid app id %q", arg)
	}
	if _, found := application.Model().App(appID); !found {
		return 0, fmt.Errorf("app %d is not installed", appID)
	}
	return appID, nil
}

func newFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <appid>",
		Short: "Toggle a game's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}
			favorite, err := application.ToggleFavorite(appID)
			if err != nil {
				return err
			}
			if favorite {
				ok("App %d marked as favorite", appID)
			} else {
				ok("App %d is no longer a favorite", appID)
			}
			return nil
		},
	}
}

func newHideCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "hide <appid>",
		Short: "Hide a game from the library listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}
			if err := application.SetHidden(appID, !show); err != nil {
				return err
			}
			if show {
				ok("App %d is visible again", appID)
			} else {
				ok("App %d hidden (games --all still lists it)", appID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "Unhide instead of hiding")
	return cmd
}

func newAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <appid> <account>",
		Short: "Assign the account a game launches under",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}
			if err := application.AssignGameAccount(appID, args[1]); err != nil {
				return err
			}
			ok("App %d now launches as %s", appID, args[1])
			return nil
		},
	}
}

func newStoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "store <appid>",
		Short: "Open a game's SteamDB page in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}
			if err := application.OpenStorePage(appID); err != nil {
				return err
			}
			ok("Opened %s", application.StoreURL(appID))
			return nil
		},
	}
}
