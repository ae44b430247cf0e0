// Package dates derives the scrollable day window shown above the task
// list and the per-day view of the task list.
package dates

import (
	"fmt"
	"time"

	"github.com/dori/dayly/internal/model"
)

const (
	// Span is the number of days on each side of the reference day
	Span = 365
	// Size is the number of entries in a window
	Size = 2*Span + 1
)

// KeyLayout formats the stable entry key
const KeyLayout = "2006-01-02"

// Entry is one day of the window
type Entry struct {
	Day     time.Time // Local midnight
	IsToday bool
	Key     string
}

// DayKey returns the canonical day-string used to match tasks
func (e Entry) DayKey() string {
	return model.DayKey(e.Day)
}

// Window is an immutable run of Size consecutive days centred on a
// reference day. Build it with Generate.
type Window struct {
	reference time.Time
	entries   []Entry
}

// Generate builds the window around reference. Days are produced with
// calendar arithmetic so DST transitions never skip or repeat a day.
func Generate(reference time.Time) Window {
	ref := model.Midnight(reference)
	entries := make([]Entry, 0, Size)
	for offset := -Span; offset <= Span; offset++ {
		d := ref.AddDate(0, 0, offset)
		entries = append(entries, Entry{
			Day:     d,
			IsToday: model.SameDay(d, ref),
			Key:     d.Format(KeyLayout),
		})
	}
	return Window{reference: ref, entries: entries}
}

// Reference returns the day the window was built around
func (w Window) Reference() time.Time {
	return w.reference
}

// Len returns the number of entries
func (w Window) Len() int {
	return len(w.entries)
}

// At returns entry i. It panics when i is out of range.
func (w Window) At(i int) Entry {
	if i < 0 || i >= len(w.entries) {
		panic(fmt.Sprintf("dates: index %d out of range [0, %d]", i, len(w.entries)-1))
	}
	return w.entries[i]
}

// Entries returns a copy of all entries
func (w Window) Entries() []Entry {
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// TodayIndex returns the index of the reference day
func (w Window) TodayIndex() int {
	for i, e := range w.entries {
		if e.IsToday {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the calendar day of t
func (w Window) IndexOf(t time.Time) (int, bool) {
	if len(w.entries) == 0 {
		return 0, false
	}
	days := int(dateOnly(t).Sub(dateOnly(w.entries[0].Day)).Hours() / 24)
	if days < 0 || days >= len(w.entries) {
		return 0, false
	}
	return days, true
}

// dateOnly moves t to UTC midnight of the same calendar day so that
// subtraction counts whole days.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
