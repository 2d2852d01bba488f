// Package main is the entry point for the unidash application.
// This file contains the reset subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"unidash/internal/config"
	"unidash/internal/reports"
)

// resetHelpText is the help message for the reset subcommand.
const resetHelpText = `unidash reset - Erase all dashboard data

USAGE:
    unidash reset [OPTIONS]

OPTIONS:
    -y, --yes    Skip the confirmation prompt
    -h, --help   Show this help message

DESCRIPTION:
    Removes every task, note, habit and mood entry and writes back an
    empty data file. This cannot be undone. Consider creating a backup
    first with 'unidash backup'.

EXAMPLES:
    # Reset with confirmation prompt
    unidash reset

    # Reset without prompting (for scripts)
    unidash reset --yes
`

// runReset handles the "unidash reset" subcommand.
func runReset(args []string) {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)

	yesFlag := fs.Bool("yes", false, "skip confirmation prompt")
	fs.BoolVar(yesFlag, "y", false, "skip confirmation prompt (shorthand)")
	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, resetHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(resetHelpText)
		os.Exit(0)
	}

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

	data, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading data: %v\n", err)
		os.Exit(1)
	}

	snap := reports.SnapshotOf(data, st.Now())

	if !*yesFlag {
		warning := fmt.Sprintf("This will delete %d tasks, %d notes, %d habits and all mood entries.",
			snap.TotalTasks, snap.NoteCount, snap.HabitCount)
		if !confirmPrompt(warning) {
			fmt.Println("Reset cancelled.")
			os.Exit(0)
		}
	}

	if err := st.ResetAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ All data erased.")
}
