package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newGamesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List installed games",
		RunE: func(_ *cobra.Command, _ []string) error {
			apps := application.VisibleApps()
			if all {
				apps = application.Model().Apps()
			}
			if len(apps) == 0 {
				warn("No installed games found under %s", application.Model().Path())
				return nil
			}

			cfg := application.Config()
			for _, game := range apps {
				marker := " "
				if cfg.IsFavorite(game.ID) {
					marker = color.YellowString("★")
				}
				line := fmt.Sprintf("%s %-40s %d", marker, game.Name, game.ID)
				if name, ok := cfg.GameAccount(game.ID); ok {
					line += "  → " + name
				}
				if !game.LastPlayed.IsZero() {
					line += "  (last played " + game.LastPlayed.Format("2006-01-02") + ")"
				}
				if all && cfg.IsHidden(game.ID) {
					line += color.New(color.Faint).Sprint("  [hidden]")
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include hidden games")
	return cmd
}
