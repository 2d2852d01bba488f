package store

// Priority represents task priority levels
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status represents the task lifecycle state
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Mood is one of the five fixed mood labels, ordered from worst to best.
type Mood string

// moodScale is the fixed mood vocabulary. Order matters: an entry's score
// is its 1-based position in this list.
var moodScale = [5]Mood{
	"😢 Sad",
	"😐 Meh",
	"🙂 Good",
	"😃 Great",
	"🤩 Awesome",
}

// Task represents a single todo item
type Task struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
	Due      string   `json:"due"` // YYYY-MM-DD
	Status   Status   `json:"status"`
}

// Note represents a freeform note. Notes have no edit operation; the
// creation date is immutable.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"` // YYYY-MM-DD, set at creation
}

// Habit represents a trackable habit with a running streak counter.
type Habit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}

// MoodEntry is one append-only mood log record.
type MoodEntry struct {
	Date string `json:"date"` // YYYY-MM-DD
	Mood Mood   `json:"mood"`
}

// Data is the full persisted store: exactly four ordered entity lists.
// A missing key unmarshals as an empty list, never an error.
type Data struct {
	Tasks   []Task      `json:"tasks"`
	Notes   []Note      `json:"notes"`
	Habits  []Habit     `json:"habits"`
	MoodLog []MoodEntry `json:"mood_log"`
}

// Done reports whether the task has been completed.
func (t Task) Done() bool {
	return t.Status == StatusCompleted
}

// Valid reports whether p is one of the recognized priority values.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Valid reports whether st is one of the recognized status values.
func (st Status) Valid() bool {
	return st == StatusPending || st == StatusCompleted
}

// Valid reports whether m is part of the fixed mood vocabulary.
func (m Mood) Valid() bool {
	return m.Score() != 0
}

// Score returns the 1-based rank of m in the mood vocabulary, or 0 for an
// unrecognized label.
func (m Mood) Score() int {
	for i, known := range moodScale {
		if m == known {
			return i + 1
		}
	}
	return 0
}

// Moods returns the fixed mood vocabulary in ascending order.
func Moods() []Mood {
	scale := make([]Mood, len(moodScale))
	copy(scale, moodScale[:])
	return scale
}

// Priorities returns the recognized priority values in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}
