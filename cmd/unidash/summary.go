// Package main is the entry point for the unidash application.
// This file contains the summary subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"unidash/internal/config"
	"unidash/internal/reports"
)

// summaryHelpText is the help message for the summary subcommand.
const summaryHelpText = `unidash summary - Print a dashboard summary to the terminal

USAGE:
    unidash summary [OPTIONS]

OPTIONS:
    --moods N    Number of recent mood entries to show (default: 7)
    -h, --help   Show this help message

DESCRIPTION:
    Prints the current dashboard state without opening the TUI:
    task counters, habit streaks and your most recent mood entries.
    Useful for shell prompts, cron mails or a quick glance.

EXAMPLES:
    # Print the summary
    unidash summary

    # Show the last 14 mood entries
    unidash summary --moods 14
`

// runSummary handles the "unidash summary" subcommand.
func runSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)

	moodsFlag := fs.Int("moods", 7, "number of recent mood entries to show")
	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, summaryHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(summaryHelpText)
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

	report, err := reports.NewGenerator(st).Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating summary: %v\n", err)
		os.Exit(1)
	}

	printSummary(report, *moodsFlag)
}

// printSummary renders the report as aligned tables.
func printSummary(report *reports.DashboardReport, moodCount int) {
	heading := color.New(color.FgCyan, color.Bold)
	muted := color.New(color.Faint)

	heading.Println("Dashboard")
	muted.Printf("as of %s\n\n", report.GeneratedAt.Format("Mon, 02 Jan 2006 15:04"))

	snap := report.Snapshot

	counters := uitable.New()
	counters.AddRow("Tasks:", fmt.Sprintf("%d/%d done", snap.CompletedTasks, snap.TotalTasks))
	counters.AddRow("Pending:", fmt.Sprintf("%d", snap.PendingTasks))
	counters.AddRow("Notes:", fmt.Sprintf("%d", snap.NoteCount))
	counters.AddRow("Habits:", fmt.Sprintf("%d", snap.HabitCount))
	counters.AddRow("Moods today:", fmt.Sprintf("%d", snap.MoodsLoggedToday))
	fmt.Println(counters)

	if len(report.Habits) > 0 {
		fmt.Println()
		heading.Println("Habit streaks")

		table := uitable.New()
		table.MaxColWidth = 40
		table.AddRow("HABIT", "STREAK")
		for _, h := range report.Habits {
			streak := fmt.Sprintf("%d", h.Streak)
			if h.Streak == 0 {
				streak = "new"
			}
			table.AddRow(h.Name, streak)
		}
		fmt.Println(table)
	}

	if len(report.MoodSeries) > 0 {
		fmt.Println()
		heading.Println("Recent moods")

		series := report.MoodSeries
		if moodCount > 0 && len(series) > moodCount {
			series = series[len(series)-moodCount:]
		}

		table := uitable.New()
		table.AddRow("DATE", "MOOD", "SCORE")
		// Newest first
		for i := len(series) - 1; i >= 0; i-- {
			p := series[i]
			table.AddRow(p.Date, string(p.Label), fmt.Sprintf("%d", p.Score))
		}
		fmt.Println(table)
	}
}
