package dates

import (
	"testing"
	"time"

	"github.com/dori/dayly/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	refs := []time.Time{
		time.Date(2026, time.February, 28, 15, 4, 5, 0, time.Local),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local),
		time.Date(2026, time.December, 31, 23, 59, 59, 0, time.Local),
		time.Date(2026, time.March, 8, 12, 0, 0, 0, zone("America/New_York")),
		time.Date(2026, time.October, 25, 12, 0, 0, 0, zone("Europe/Berlin")),
	}

	for _, ref := range refs {
		t.Run(ref.String(), func(t *testing.T) {
			w := Generate(ref)
			require.Equal(t, Size, w.Len())
			assert.Equal(t, 731, w.Len())

			todays := 0
			for i, e := range w.Entries() {
				if e.IsToday {
					todays++
					assert.Equal(t, Span, i)
					assert.True(t, model.SameDay(e.Day, ref))
				}
				assert.Equal(t, 0, e.Day.Hour())
				if i > 0 {
					prev := w.At(i - 1).Day
					assert.True(t, model.SameDay(prev.AddDate(0, 0, 1), e.Day),
						"entry %d must follow %s by one calendar day", i, prev)
					assert.Less(t, w.At(i-1).Key, e.Key)
				}
			}
			assert.Equal(t, 1, todays)
			assert.Equal(t, Span, w.TodayIndex())
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	ref := time.Date(2026, time.February, 28, 9, 0, 0, 0, time.Local)

	a := Generate(ref)
	b := Generate(ref.Add(3 * time.Hour))

	assert.Equal(t, a.Entries(), b.Entries())
	assert.Equal(t, "2025-02-28", a.At(0).Key)
	assert.Equal(t, "2027-02-28", a.At(Size-1).Key)
}

func TestWindowAtPanicsOutOfRange(t *testing.T) {
	w := Generate(time.Now())
	assert.Panics(t, func() { w.At(-1) })
	assert.Panics(t, func() { w.At(Size) })
}

func TestIndexOf(t *testing.T) {
	ref := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.Local)
	w := Generate(ref)

	i, ok := w.IndexOf(time.Date(2026, time.March, 1, 18, 0, 0, 0, time.Local))
	require.True(t, ok)
	assert.Equal(t, Span+1, i)

	i, ok = w.IndexOf(ref.AddDate(0, 0, -Span))
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = w.IndexOf(ref.AddDate(0, 0, Span+1))
	assert.False(t, ok)
	_, ok = w.IndexOf(ref.AddDate(-2, 0, 0))
	assert.False(t, ok)
}

func TestSelection(t *testing.T) {
	w := Generate(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.Local))
	sel := NewSelection(w)

	assert.Equal(t, Span, sel.Index())
	assert.True(t, sel.Entry().IsToday)
	assert.Equal(t, "Sat Feb 28 2026", sel.DayKey())

	next := sel.Select(Span + 1)
	assert.Equal(t, "Sun Mar 01 2026", next.DayKey())
	assert.Equal(t, Span, sel.Index(), "selections are values")

	assert.Panics(t, func() { sel.Select(-1) })
	assert.Panics(t, func() { sel.Select(Size) })
	assert.NotPanics(t, func() { sel.Select(0); sel.Select(Size - 1) })

	assert.Equal(t, 0, sel.Move(-10000).Index())
	assert.Equal(t, Size-1, sel.Move(10000).Index())
	assert.Equal(t, Span, sel.Move(5).Today().Index())

	jumped, ok := sel.SelectDay(time.Date(2026, time.December, 25, 0, 0, 0, 0, time.Local))
	require.True(t, ok)
	assert.Equal(t, "Fri Dec 25 2026", jumped.DayKey())

	same, ok := sel.SelectDay(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.Local))
	assert.False(t, ok)
	assert.Equal(t, sel.Index(), same.Index())
}

func TestFilterScenario(t *testing.T) {
	tasks := []model.Task{{ID: "1", Title: "Task 1", Date: "Sat Feb 28 2026"}}
	w := Generate(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.Local))
	sel := NewSelection(w)

	assert.Equal(t, tasks, sel.Visible(tasks))

	sel = sel.Move(1)
	visible := sel.Visible(tasks)
	assert.NotNil(t, visible)
	assert.Empty(t, visible)
}

func TestFilterIsReferentiallyTransparent(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Date: "Sat Feb 28 2026"},
		{ID: "2", Date: "Sun Mar 01 2026"},
		{ID: "3", Date: "Sat Feb 28 2026", Done: true},
		{ID: "4", Date: "Sat Feb 28 2025"},
	}
	day := "Sat Feb 28 2026"

	first := Filter(tasks, day)
	second := Filter(tasks, day)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "1", first[0].ID)
	assert.Equal(t, "3", first[1].ID)
	for _, task := range first {
		assert.Equal(t, day, task.Date)
	}
	assert.Empty(t, Filter(nil, day))
}

func TestLabel(t *testing.T) {
	today := time.Date(2026, time.February, 28, 10, 0, 0, 0, time.Local)

	assert.Equal(t, "Today", Label(today.Add(-time.Hour), today))
	assert.Equal(t, "Mar 1, 2026", Label(today.AddDate(0, 0, 1), today))
}

// zone falls back to time.Local when tzdata is missing
func zone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
