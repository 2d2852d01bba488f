// Package main is the entry point for the unidash application.
// It loads configuration, initializes the store, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"unidash/internal/config"
	"unidash/internal/store"
	"unidash/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `unidash - A unified productivity dashboard for your terminal

USAGE:
    unidash [OPTIONS]
    unidash <command> [ARGS]

COMMANDS:
    summary          Print a dashboard summary to the terminal
    export           Generate a dashboard report (Markdown)
    export -f json   Output report as JSON
    backup           Create a backup of the data file
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    import           Import tasks from other apps
    import todoist   Import from Todoist CSV backup
    import taskwarrior  Import from Taskwarrior JSON
    reset            Clear all data (tasks, notes, habits, mood log)

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    unidash is a terminal-based productivity dashboard that combines tasks,
    notes, habit streaks and a mood log in a single keyboard-driven interface.

FEATURES:
    • Tasks      - Add, complete, delete tasks with vim-style navigation
    • Notes      - Quick titled notes, newest first
    • Habits     - Streak counting with one-key daily check-in
    • Mood       - One-key mood logging on a five-step scale
    • Local Data - A single plain JSON file in ~/.unidash/

KEYBINDINGS:
    Global:
        Tab          Switch between panes
        1, 2, 3, 4   Jump to specific pane
        ?            Show help overlay
        R            Reset all data
        q            Quit

    Tasks Pane:
        j/k, ↓/↑     Navigate
        a            Add task
        d/Space      Toggle done
        x            Delete task
        g/G          Go to top/bottom

    Notes Pane:
        a            Add note (title, then text)
        x            Delete note

    Habits Pane:
        a            Add habit
        d/Space      Mark done today

    Mood Pane:
        j/k          Pick a mood
        d/Space      Log selected mood

DATA STORAGE:
    All data is stored in ~/.unidash/dashboard.json as a single JSON
    document with four lists: tasks, notes, habits and the mood log.

CONFIGURATION:
    Optional config file: ~/.config/unidash/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start the app
    unidash

    # Print a summary without entering the TUI
    unidash summary

    # Create a backup
    unidash backup

    # Restore from a backup
    unidash restore --latest

    # Generate a report as JSON
    unidash export --format json

    # Show version
    unidash --version
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "summary":
			runSummary(os.Args[2:])
			return
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		case "import":
			runImport(os.Args[2:])
			return
		case "reset":
			runReset(os.Args[2:])
			return
		}
	}

	// Define flags
	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("unidash version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	// Reject unknown arguments
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/unidash/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing store: %v\n", err)
		os.Exit(1)
	}

	// Create styles from theme config
	styles := ui.NewStylesFromTheme(&cfg.Theme)

	// Create app config with keys and UX settings
	appCfg := &ui.AppConfig{
		Keys:                  &cfg.Keys,
		ConfirmDeletions:      cfg.UX.ConfirmDeletions,
		ShowOnboarding:        cfg.UX.ShowOnboarding,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
	}

	if err := ui.Run(st, styles, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// openStore initializes the store with a corruption warning hook.
func openStore(cfg *config.Config) (*store.Store, error) {
	st, err := store.New(cfg.GetDataDir())
	if err != nil {
		return nil, err
	}
	st.SetOnRecover(func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: data file recovered: %v\n", err)
	})
	return st, nil
}
