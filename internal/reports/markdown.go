package reports

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders a dashboard report as human-readable Markdown.
func FormatMarkdown(report *DashboardReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dashboard, %s\n\n", report.GeneratedAt.Format("2006-01-02"))

	b.WriteString("## Snapshot\n\n")
	fmt.Fprintf(&b, "| Tasks total | Completed | Pending | Notes | Habits |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d |\n\n",
		report.Snapshot.TotalTasks,
		report.Snapshot.CompletedTasks,
		report.Snapshot.PendingTasks,
		report.Snapshot.NoteCount,
		report.Snapshot.HabitCount,
	)

	b.WriteString("## Habits\n\n")
	if len(report.Habits) == 0 {
		b.WriteString("_No habits tracked yet._\n\n")
	} else {
		for _, h := range report.Habits {
			fmt.Fprintf(&b, "- %s: streak %d\n", h.Name, h.Streak)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Mood over time\n\n")
	if len(report.MoodSeries) == 0 {
		b.WriteString("_No mood entries yet._\n")
	} else {
		fmt.Fprintf(&b, "| Date | Mood | Score |\n")
		fmt.Fprintf(&b, "|---|---|---|\n")
		for _, p := range report.MoodSeries {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", p.Date, p.Label, p.Score)
		}
	}

	return b.String()
}
