// Package cli is the cobra command tree. Commands talk to the rest of the
// program only through the shared application context built in the
// persistent pre-run hook.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"relog/internal/app"
	"relog/internal/config"
	"relog/internal/logging"
	"relog/internal/processes"
	"relog/internal/registry"
	"relog/internal/steam"
)

var (
	application *app.App

	flagSteamDir string
)

// version is stamped by the build; Execute's caller overrides it.
var version = "dev"

// SetVersion records the release version shown by the version command.
func SetVersion(v string) { version = v }

var rootCmd = &cobra.Command{
	Use:   "relog",
	Short: "Switch Steam accounts and launch games without retyping passwords",
	Long: `relog manages the saved logins of a local Steam install. It reads the
client's own config files to discover accounts and installed games,
flips the auto-login identity in the registry, and restarts the client
so the switch takes effect.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSteamDir, "steam-dir", "",
		"Steam install directory (default: resolved from the registry)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// version needs none of the machinery below.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := config.DefaultDir()
		if err != nil {
			return fmt.Errorf("resolving config dir: %w", err)
		}
		cfg, err := config.NewConfig(configDir, config.BaseDefaults)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		var extra []io.Writer
		if cfg.DebugLogging() {
			extra = append(extra, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		if err := logging.Init(configDir, cfg.DebugLogging(), extra...); err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}

		store, err := registry.NewSystemStore()
		if err != nil {
			return err
		}

		installDir := flagSteamDir
		if installDir == "" {
			installDir = cfg.SteamInstallDir()
		}
		model, err := steam.NewModel(store, installDir)
		if err != nil {
			return err
		}
		if _, err := model.DiscoverAccounts(); err != nil {
			return err
		}
		if _, err := model.DiscoverInstalls(); err != nil {
			return err
		}

		proc := processes.New(filepath.Join(model.Path(), "steam.exe"), "steam.exe")
		application = app.New(cfg, model, proc)
		return nil
	}

	rootCmd.AddCommand(
		newAccountsCmd(),
		newGamesCmd(),
		newInfoCmd(),
		newCurrentCmd(),
		newLoginCmd(),
		newLaunchCmd(),
		newFavoriteCmd(),
		newHideCmd(),
		newAssignCmd(),
		newStoreCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the program version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("relog", version)
		},
	}
}

// ok prints a green success line.
func ok(format string, a ...any) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line to stderr.
func warn(format string, a ...any) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}
