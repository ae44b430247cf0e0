package model

import (
	"time"

	"github.com/google/uuid"
)

// DayLayout is the canonical day-string layout ("Sat Feb 28 2026").
// Tasks and the date window are joined by exact equality on this form.
const DayLayout = "Mon Jan 02 2006"

// Task represents a todo item
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
	Date  string `json:"date"` // Canonical day-string, see DayKey
	Done  bool   `json:"done"`
}

// NewID returns a fresh task id. Ids are UUIDv7 so they sort by creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return uuid.New().String()
	}
	return id.String()
}

// DayKey returns the canonical day-string for t in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDayKey parses a canonical day-string into local midnight.
func ParseDayKey(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.Local)
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// OnDay returns true if the task is scheduled on the given canonical day
func (t *Task) OnDay(day string) bool {
	return t.Date == day
}

// Day returns the task date as local midnight. The second value is false
// when the stored date is not a canonical day-string.
func (t *Task) Day() (time.Time, bool) {
	d, err := ParseDayKey(t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsToday returns true if the task is scheduled for today
func (t *Task) IsToday() bool {
	return t.Date == DayKey(time.Now())
}
