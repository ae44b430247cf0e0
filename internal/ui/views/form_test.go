package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/dayly/internal/model"
	"github.com/dori/dayly/internal/store"
	"github.com/dori/dayly/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(v FormView, text string) FormView {
	for _, r := range text {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func newTestStore(t *testing.T, tasks ...model.Task) *store.Store {
	t.Helper()
	s := store.New(store.WithTasks(tasks))
	t.Cleanup(s.Close)
	return s
}

func TestCreateFormSavesTaskForToday(t *testing.T) {
	s := newTestStore(t)
	v := newCreateForm(s, fixedNow)

	assert.False(t, v.Dirty())
	v = typeText(v, "Buy milk")
	assert.True(t, v.Dirty())

	_, cmd := v.Update(keyPress("ctrl+s"))
	msgs := collect(cmd)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "Sat Feb 28 2026", tasks[0].Date)
	assert.False(t, tasks[0].Done)

	_, ok := hasMsg[OpenHomeMsg](msgs)
	assert.True(t, ok)
}

func TestCreateFormRejectsBlankTitle(t *testing.T) {
	s := newTestStore(t)
	v := newCreateForm(s, fixedNow)
	v = typeText(v, "   ")

	v, cmd := v.Update(keyPress("ctrl+s"))
	assert.Nil(t, cmd)
	assert.Equal(t, validate.ErrEmptyTitle.Error(), v.Err())
	assert.Equal(t, 0, s.Len(), "store untouched on validation failure")
	assert.Contains(t, v.View(), validate.ErrEmptyTitle.Error())
}

func TestCreateFormTypedDate(t *testing.T) {
	s := newTestStore(t)
	v := newCreateForm(s, fixedNow)
	v = typeText(v, "Call mom")

	v, _ = v.Update(keyPress("tab"))
	require.Equal(t, FieldDate, v.Focus())
	v = typeText(v, "tomorrow")

	v, _ = v.Update(keyPress("enter"))
	assert.Empty(t, v.Err())
	assert.Equal(t, FieldNotes, v.Focus())
	assert.Equal(t, "Sun Mar 01 2026", model.DayKey(v.Day()))

	v = typeText(v, "ring twice")
	v.Update(keyPress("ctrl+s"))

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Sun Mar 01 2026", tasks[0].Date)
	assert.Equal(t, "ring twice", tasks[0].Notes)
}

func TestCreateFormRejectsUnknownDate(t *testing.T) {
	s := newTestStore(t)
	v := newCreateForm(s, fixedNow)
	v = typeText(v, "Call mom")
	v, _ = v.Update(keyPress("tab"))
	v = typeText(v, "someday")

	v, _ = v.Update(keyPress("ctrl+s"))
	assert.Contains(t, v.Err(), "unrecognized date")
	assert.Equal(t, 0, s.Len())
}

func TestFormPickerSetsDay(t *testing.T) {
	s := newTestStore(t)
	v := newCreateForm(s, fixedNow)

	v, _ = v.Update(keyPress("ctrl+d"))
	v, _ = v.Update(keyPress("l"))
	v, cmd := v.Update(keyPress("enter"))
	picked, ok := hasMsg[PickedMsg](collect(cmd))
	require.True(t, ok)

	// Feb 28 is the last day of the month, so "l" stays put
	v, _ = v.Update(picked)
	assert.Equal(t, "Sat Feb 28 2026", model.DayKey(v.Day()))

	v, _ = v.Update(keyPress("ctrl+d"))
	v, _ = v.Update(keyPress("h"))
	v, cmd = v.Update(keyPress("enter"))
	picked, _ = hasMsg[PickedMsg](collect(cmd))
	v, _ = v.Update(picked)
	assert.Equal(t, "Fri Feb 27 2026", model.DayKey(v.Day()))
	assert.True(t, v.Dirty())
}

func TestFormCancel(t *testing.T) {
	s := newTestStore(t)

	clean := newCreateForm(s, fixedNow)
	_, cmd := clean.Update(keyPress("esc"))
	_, ok := hasMsg[OpenHomeMsg](collect(cmd))
	assert.True(t, ok, "clean form closes at once")

	dirty := typeText(newCreateForm(s, fixedNow), "x")
	dirty, cmd = dirty.Update(keyPress("esc"))
	assert.Nil(t, cmd, "unsaved changes ask first")
	assert.Contains(t, dirty.View(), "Discard unsaved changes?")

	dirty, cmd = dirty.Update(keyPress("n"))
	assert.Nil(t, cmd)

	dirty, _ = dirty.Update(keyPress("esc"))
	_, cmd = dirty.Update(keyPress("y"))
	_, ok = hasMsg[OpenHomeMsg](collect(cmd))
	assert.True(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestEditFormPreservesIDAndDone(t *testing.T) {
	s := newTestStore(t, model.Task{ID: "a", Title: "Buy milk", Notes: "2L", Date: "Sat Feb 28 2026", Done: true})

	v, ok := newEditForm(s, "a", fixedNow)
	require.True(t, ok)
	assert.True(t, v.Editing())
	assert.False(t, v.Dirty())
	assert.Equal(t, "Sat Feb 28 2026", model.DayKey(v.Day()))

	v = typeText(v, " and eggs")
	_, cmd := v.Update(keyPress("ctrl+s"))
	_, ok = hasMsg[OpenHomeMsg](collect(cmd))
	assert.True(t, ok)

	task, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Buy milk and eggs", task.Title)
	assert.Equal(t, "2L", task.Notes)
	assert.True(t, task.Done)
	assert.Equal(t, 1, s.Len())
}

func TestEditFormMissingTask(t *testing.T) {
	s := newTestStore(t)
	_, ok := newEditForm(s, "nope", fixedNow)
	assert.False(t, ok)
}

func TestEditFormReturnsHomeWhenTaskVanishes(t *testing.T) {
	s := newTestStore(t, model.Task{ID: "a", Title: "Buy milk", Date: "Sat Feb 28 2026"})
	v, ok := newEditForm(s, "a", fixedNow)
	require.True(t, ok)

	s.Delete("a")
	_, cmd := v.Update(SnapshotMsg{Snapshot: s.Snapshot()})
	_, ok = hasMsg[OpenHomeMsg](collect(cmd))
	assert.True(t, ok)
}

func TestEditFormDelete(t *testing.T) {
	s := newTestStore(t, model.Task{ID: "a", Title: "Buy milk", Date: "Sat Feb 28 2026"})
	v, ok := newEditForm(s, "a", fixedNow)
	require.True(t, ok)

	v, _ = v.Update(keyPress("ctrl+x"))
	assert.Contains(t, v.View(), `Delete "Buy milk"?`)
	_, cmd := v.Update(keyPress("y"))

	assert.Equal(t, 0, s.Len())
	_, ok = hasMsg[OpenHomeMsg](collect(cmd))
	assert.True(t, ok)
}

func TestCreateFormHasNoDelete(t *testing.T) {
	s := newTestStore(t, model.Task{ID: "a", Title: "Buy milk", Date: "Sat Feb 28 2026"})
	v := newCreateForm(s, fixedNow)

	v, _ = v.Update(keyPress("ctrl+x"))
	v.Update(keyPress("y"))
	assert.Equal(t, 1, s.Len())
}

func TestEditFormWithTabbedNotesStartsClean(t *testing.T) {
	s := newTestStore(t, model.Task{ID: "a", Title: "Buy milk", Notes: "a\tb", Date: "Sat Feb 28 2026"})

	v, ok := newEditForm(s, "a", fixedNow)
	require.True(t, ok)
	assert.False(t, v.Dirty(), "normalized notes are not an unsaved change")

	_, cmd := v.Update(keyPress("esc"))
	_, ok = hasMsg[OpenHomeMsg](collect(cmd))
	assert.True(t, ok, "closes without asking")
}

func TestEditFormDeleteIgnoresItsOwnSnapshot(t *testing.T) {
	s := newTestStore(t, model.Task{ID: "a", Title: "Buy milk", Date: "Sat Feb 28 2026"})
	v, ok := newEditForm(s, "a", fixedNow)
	require.True(t, ok)

	v, _ = v.Update(keyPress("ctrl+x"))
	v, _ = v.Update(keyPress("y"))

	// The deletion publishes before the screen switches away
	_, cmd := v.Update(SnapshotMsg{Snapshot: s.Snapshot()})
	assert.Nil(t, cmd)
}
