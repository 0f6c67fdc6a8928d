package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"relog/internal/keyvalues"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <appid>",
		Short: "Show everything known about an installed game",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}
			model := application.Model()
			game, _ := model.App(appID)
			cfg := application.Config()

			fmt.Println("name:", game.Name)
			fmt.Println("appid:", game.ID)
			fmt.Println("install dir:", game.InstallDir)
			if !game.LastPlayed.IsZero() {
				fmt.Println("last played:", game.LastPlayed.Format("2006-01-02 15:04"))
			}
			if name, found := cfg.GameAccount(appID); found {
				fmt.Println("launches as:", name)
			}
			fmt.Println("favorite:", cfg.IsFavorite(appID))
			fmt.Println("hidden:", cfg.IsHidden(appID))
			fmt.Println("steamdb:", application.StoreURL(appID))

			thumb := model.Thumbnail(appID)
			if thumb.Portrait != "" {
				fmt.Println("portrait art:", thumb.Portrait)
			}
			if thumb.Landscape != "" {
				fmt.Println("landscape art:", thumb.Landscape)
			}

			if manifest, found := model.Manifest(appID); found {
				if size, found := keyvalues.GetString(manifest, "SizeOnDisk"); found {
					fmt.Println("size on disk:", size)
				}
				if branch, found := keyvalues.GetString(manifest, "UserConfig", "BetaKey"); found {
					fmt.Println("beta branch:", branch)
				}
			}

			for folder, ids := range model.LibraryFolders() {
				for _, id := range ids {
					if id == appID {
						fmt.Println("library folder:", folder)
					}
				}
			}
			return nil
		},
	}
}
