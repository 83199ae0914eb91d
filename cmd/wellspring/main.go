package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"wellspring/internal/cli"
	"wellspring/internal/cli/habits"
	"wellspring/internal/cli/moods"
	"wellspring/internal/cli/settings"
	"wellspring/internal/cli/system"
	"wellspring/internal/constants"
	apperrors "wellspring/internal/errors"
	"wellspring/internal/legacy"
	"wellspring/internal/logger"
	"wellspring/internal/prefs"
	"wellspring/internal/storage"
	"wellspring/internal/storage/postgres"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables or .pgpass instead." type:"string" default:"~/.config/wellspring/wellspring.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize wellspring storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations and retry the legacy data import."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit    habits.HabitCmd      `cmd:"" help:"Manage daily habits."`
	Mood     moods.MoodCmd        `cmd:"" help:"Manage the mood journal."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Remind   system.RemindCmd     `cmd:"" help:"Run the hydration reminder daemon in the foreground."`
	Notify   system.NotifyCmd     `cmd:"" help:"Send a test hydration notification."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellness tracker: daily habits and a mood journal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := expandHome(CLI.Config)

	// Initialize storage based on config format
	var store storage.Provider
	var configDir string
	if storage.IsPostgresConnString(config) {
		if err := postgres.ValidateConnString(config); err != nil {
			apperrors.Fatal(err)
		}
		store = storage.NewPostgresStore(config)
		// Preferences stay local even with remote storage.
		configDir = expandHome(filepath.Dir(constants.DefaultConfigPath))
	} else {
		store = storage.NewSQLiteStore(config)
		configDir = filepath.Dir(config)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	p := prefs.NewStore(filepath.Join(configDir, constants.PrefsFileName))
	if err := p.Load(); err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store: store,
		Prefs: p,
		Debug: CLI.Debug,
	}

	// Load the store before running the command; init and migrate handle
	// their own loading. A failed legacy import is logged and retried on a
	// later run, it never blocks the command.
	cmd := ""
	if ctx.Selected() != nil {
		cmd = ctx.Selected().Name
	}
	loaded := false
	if cmd != "init" && cmd != "migrate" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		loaded = true

		if !p.MigrationCompleted() {
			if err := legacy.Import(p, store); err != nil {
				logger.Warn("Legacy import failed, will retry next run", "error", err)
			}
		}
	}

	err := ctx.Run(appCtx)
	if loaded {
		store.Close()
	}
	if err != nil {
		apperrors.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
