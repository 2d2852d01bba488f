// Package reports computes the derived dashboard views: the snapshot
// counters, the mood time series, and the habit streak overview. Everything
// here is recomputed on every read from the current store state; nothing is
// cached or persisted.
package reports

import (
	"time"

	"unidash/internal/store"
)

// Snapshot holds the dashboard counters.
type Snapshot struct {
	TotalTasks       int `json:"total_tasks"`
	CompletedTasks   int `json:"completed_tasks"`
	PendingTasks     int `json:"pending_tasks"`
	NoteCount        int `json:"note_count"`
	HabitCount       int `json:"habit_count"`
	MoodsLoggedToday int `json:"moods_logged_today"`
}

// HabitStatus is one row of the habit streak overview.
type HabitStatus struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}

// MoodPoint is one point of the mood time series. Score is the 1-based rank
// of the label in the fixed mood vocabulary.
type MoodPoint struct {
	Date  string     `json:"date"`
	Label store.Mood `json:"label"`
	Score int        `json:"score"`
}

// DashboardReport is the full derived view rendered by the export command.
type DashboardReport struct {
	Snapshot    Snapshot      `json:"snapshot"`
	Habits      []HabitStatus `json:"habits"`
	MoodSeries  []MoodPoint   `json:"mood_series"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Generator creates reports from store data.
type Generator struct {
	store *store.Store
}

// NewGenerator creates a new report generator.
func NewGenerator(s *store.Store) *Generator {
	return &Generator{store: s}
}

// Snapshot loads the store and computes the counters.
func (g *Generator) Snapshot() (Snapshot, error) {
	data, err := g.store.Load()
	if err != nil {
		return Snapshot{}, err
	}
	return SnapshotOf(data, g.store.Now()), nil
}

// MoodSeries loads the store and computes the mood time series.
func (g *Generator) MoodSeries() ([]MoodPoint, error) {
	data, err := g.store.Load()
	if err != nil {
		return nil, err
	}
	return MoodSeriesOf(data), nil
}

// Generate produces the full dashboard report.
func (g *Generator) Generate() (*DashboardReport, error) {
	data, err := g.store.Load()
	if err != nil {
		return nil, err
	}
	return &DashboardReport{
		Snapshot:    SnapshotOf(data, g.store.Now()),
		Habits:      HabitOverviewOf(data),
		MoodSeries:  MoodSeriesOf(data),
		GeneratedAt: g.store.Now(),
	}, nil
}

// SnapshotOf computes the counters from a loaded snapshot. Pending is
// defined as total minus completed.
func SnapshotOf(data *store.Data, now time.Time) Snapshot {
	completed := 0
	for _, t := range data.Tasks {
		if t.Done() {
			completed++
		}
	}

	today := now.Format("2006-01-02")
	moodsToday := 0
	for _, e := range data.MoodLog {
		if e.Date == today {
			moodsToday++
		}
	}

	return Snapshot{
		TotalTasks:       len(data.Tasks),
		CompletedTasks:   completed,
		PendingTasks:     len(data.Tasks) - completed,
		NoteCount:        len(data.Notes),
		HabitCount:       len(data.Habits),
		MoodsLoggedToday: moodsToday,
	}
}

// MoodSeriesOf maps the mood log to (date, label, score) points. The series
// stays in log order: it is never sorted or deduplicated, so two entries on
// the same day are two distinct points.
func MoodSeriesOf(data *store.Data) []MoodPoint {
	series := make([]MoodPoint, 0, len(data.MoodLog))
	for _, e := range data.MoodLog {
		series = append(series, MoodPoint{
			Date:  e.Date,
			Label: e.Mood,
			Score: e.Mood.Score(),
		})
	}
	return series
}

// HabitOverviewOf lists each habit with its current streak, in store order.
func HabitOverviewOf(data *store.Data) []HabitStatus {
	overview := make([]HabitStatus, 0, len(data.Habits))
	for _, h := range data.Habits {
		overview = append(overview, HabitStatus{Name: h.Name, Streak: h.Streak})
	}
	return overview
}
