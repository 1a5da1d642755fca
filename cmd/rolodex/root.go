// Root command for the rolodex CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/internal/store"
	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// Version is the CLI version reported by the version command.
const Version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagJSON      bool
)

// contacts is the in-process book, loaded once by PersistentPreRunE.
// There is exactly one actor, so no locking is needed.
var contacts *book.Book

// snapshots is the store the book was loaded from; mutating commands
// save back through it.
var snapshots store.Store

var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "Rolodex is a personal contact book",
	Long: `Rolodex manages personal contacts: validated phone numbers, optional
birthdays, and an upcoming-birthday query. Contacts persist in a single
snapshot per data directory.

Run without a subcommand to start the interactive prompt.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return openBook()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.rolodex-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "snapshot backend: json or sqlite (default: json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(addBirthdayCmd)
	rootCmd.AddCommand(showBirthdayCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(versionCmd)
}

// openBook resolves configuration, opens the snapshot store, and loads
// the book. Called once per process; a missing snapshot yields an empty
// book, while any other persistence failure is fatal.
func openBook() error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return err
	}
	backend := flagBackend
	if backend == "" {
		backend = cfg.GetString(cfgKeyBackend)
	}

	snapshots, err = store.Open(store.Config{Backend: backend, DataDir: dataDir})
	if err != nil {
		return err
	}
	contacts, err = snapshots.Load()
	return err
}

// upcomingDays returns the configured birthday-window length.
func upcomingDays() int {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return book.DefaultUpcomingDays
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return book.DefaultUpcomingDays
	}
	days := cfg.GetInt(cfgKeyUpcomingDays)
	if days <= 0 {
		return book.DefaultUpcomingDays
	}
	return days
}
