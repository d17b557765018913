package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glenxmac/crewboard/internal/config"
	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/db"
	"github.com/glenxmac/crewboard/internal/events"
	"github.com/glenxmac/crewboard/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store   crew.Store
	config  *config.Config
	bus     *events.Bus
	root    *cobra.Command
	noColor bool
}

// NewApp creates a new CLI application with the given store and config.
// A nil store is opened lazily from the configured database path.
func NewApp(store crew.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg, bus: events.NewBus()}

	a.root = &cobra.Command{
		Use:   "crewboard",
		Short: "A crew scheduling board for field services",
		Long: `Crewboard is a terminal scheduling board for field-service crews.

Running it without a subcommand opens the interactive board: a day or
week grid of team columns and half-hour slots where bookings can be
moved and resized with the mouse or keyboard.

The subcommands manage the same data from scripts and quick one-liners.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			return tui.Run(a.store, a.config, a.bus)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.bookingsCmd())
	a.root.AddCommand(a.teamsCmd())
	a.root.AddCommand(a.peopleCmd())
	a.root.AddCommand(a.productsCmd())
	a.root.AddCommand(a.cardCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("crewboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureStore opens the SQLite store on first use. Commands that only touch
// configuration never open the database.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	a.store = store
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the store if one was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
