package dates

import (
	"fmt"
	"time"

	"github.com/dori/dayly/internal/model"
)

// Selection tracks which entry of a Window is selected
type Selection struct {
	window Window
	index  int
}

// NewSelection starts on the window's reference day
func NewSelection(w Window) Selection {
	return Selection{window: w, index: w.TodayIndex()}
}

// Window returns the window the selection moves over
func (s Selection) Window() Window {
	return s.window
}

// Index returns the selected index
func (s Selection) Index() int {
	return s.index
}

// Entry returns the selected entry
func (s Selection) Entry() Entry {
	return s.window.At(s.index)
}

// DayKey returns the canonical day-string of the selected entry
func (s Selection) DayKey() string {
	return s.Entry().DayKey()
}

// Select moves to index i. An index outside the window panics.
func (s Selection) Select(i int) Selection {
	if i < 0 || i >= s.window.Len() {
		panic(fmt.Sprintf("dates: selection %d out of range [0, %d]", i, s.window.Len()-1))
	}
	s.index = i
	return s
}

// Move shifts the selection by delta days, stopping at the window edges
func (s Selection) Move(delta int) Selection {
	i := s.index + delta
	if i < 0 {
		i = 0
	}
	if last := s.window.Len() - 1; i > last {
		i = last
	}
	s.index = i
	return s
}

// Today moves back to the reference day
func (s Selection) Today() Selection {
	s.index = s.window.TodayIndex()
	return s
}

// SelectDay jumps to the calendar day of t. The second value is false,
// and the selection unchanged, when t lies outside the window.
func (s Selection) SelectDay(t time.Time) (Selection, bool) {
	i, ok := s.window.IndexOf(t)
	if !ok {
		return s, false
	}
	s.index = i
	return s, true
}

// Visible returns the tasks scheduled on the selected day
func (s Selection) Visible(tasks []model.Task) []model.Task {
	return Filter(tasks, s.DayKey())
}

// Filter returns every task on the canonical day, in list order.
// The result is never nil.
func Filter(tasks []model.Task, day string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.OnDay(day) {
			out = append(out, t)
		}
	}
	return out
}

// Label returns the header text for day: "Today" or "Feb 28, 2026"
func Label(day, today time.Time) string {
	if model.SameDay(day, today) {
		return "Today"
	}
	return day.Format("Jan 2, 2006")
}
