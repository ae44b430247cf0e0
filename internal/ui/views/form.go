package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/dayly/internal/dates"
	"github.com/dori/dayly/internal/model"
	"github.com/dori/dayly/internal/store"
	"github.com/dori/dayly/internal/ui/theme"
	"github.com/dori/dayly/internal/validate"
)

// FormField identifies the focused form row
type FormField int

const (
	FieldTitle FormField = iota
	FieldDate
	FieldNotes
	fieldCount
)

type formConfirm int

const (
	confirmNone formConfirm = iota
	confirmDiscard
	confirmDelete
)

// FormView creates a new task or edits an existing one
type FormView struct {
	store *store.Store
	width int

	editing bool
	taskID  string
	deleted bool

	title     textinput.Model
	dateInput textinput.Model
	notes     textarea.Model
	day       time.Time

	// Values the form was opened with, for the unsaved-changes check
	initTitle string
	initNotes string
	initDay   string

	focus   FormField
	confirm formConfirm
	err     string

	picking bool
	picker  PickerView

	now func() time.Time
}

func newFormView(s *store.Store, now func() time.Time) FormView {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = validate.MaxTitleLength
	title.Width = 50
	title.Prompt = ""

	dateInput := textinput.New()
	dateInput.Placeholder = "today, tomorrow, fri, 2026-03-01, Mar 1"
	dateInput.CharLimit = 32
	dateInput.Width = 40
	dateInput.Prompt = ""

	notes := textarea.New()
	notes.Placeholder = "Notes"
	notes.CharLimit = 4096
	notes.ShowLineNumbers = false
	notes.SetWidth(52)
	notes.SetHeight(5)

	return FormView{
		store:     s,
		title:     title,
		dateInput: dateInput,
		notes:     notes,
		now:       now,
	}
}

// NewCreateForm returns an empty form dated today
func NewCreateForm(s *store.Store) FormView {
	return newCreateForm(s, time.Now)
}

func newCreateForm(s *store.Store, now func() time.Time) FormView {
	v := newFormView(s, now)
	v.day = model.Midnight(now())
	v.initDay = model.DayKey(v.day)
	v.title.Focus()
	return v
}

// NewEditForm returns a form filled from the task with the given id.
// The second value is false when no such task exists.
func NewEditForm(s *store.Store, id string) (FormView, bool) {
	return newEditForm(s, id, time.Now)
}

func newEditForm(s *store.Store, id string, now func() time.Time) (FormView, bool) {
	task, ok := s.Get(id)
	if !ok {
		return FormView{}, false
	}

	v := newFormView(s, now)
	v.editing = true
	v.taskID = id

	day, ok := task.Day()
	if !ok {
		day = model.Midnight(now())
	}
	v.day = day
	v.title.SetValue(task.Title)
	v.notes.SetValue(task.Notes)

	// Compare against what the inputs hold; they may normalize the text
	v.initTitle = v.title.Value()
	v.initNotes = v.notes.Value()
	v.initDay = model.DayKey(day)
	v.title.Focus()
	return v, true
}

// Init starts the cursor blinking
func (v FormView) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the view dimensions
func (v FormView) SetSize(width, height int) FormView {
	v.width = width
	if width > 10 {
		w := min(width-6, 72)
		v.title.Width = w - 2
		v.dateInput.Width = w - 2
		v.notes.SetWidth(w)
	}
	if height > 20 {
		v.notes.SetHeight(min(height-16, 10))
	}
	return v
}

// Editing reports whether the form edits an existing task
func (v FormView) Editing() bool {
	return v.editing
}

// TaskID returns the id of the edited task
func (v FormView) TaskID() string {
	return v.taskID
}

// Day returns the currently chosen day
func (v FormView) Day() time.Time {
	return v.day
}

// Focus returns the focused row
func (v FormView) Focus() FormField {
	return v.focus
}

// Err returns the message of the last failed save
func (v FormView) Err() string {
	return v.err
}

// Dirty reports whether the form differs from what it was opened with
func (v FormView) Dirty() bool {
	return v.title.Value() != v.initTitle ||
		v.notes.Value() != v.initNotes ||
		model.DayKey(v.day) != v.initDay ||
		strings.TrimSpace(v.dateInput.Value()) != ""
}

// IsInputMode always holds: the form owns the keyboard
func (v FormView) IsInputMode() bool {
	return true
}

// Update handles messages
func (v FormView) Update(msg tea.Msg) (FormView, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		if v.editing && !v.deleted && !containsID(msg.Snapshot.Tasks, v.taskID) {
			return v, tea.Batch(emit(OpenHomeMsg{}), status("Task no longer exists"))
		}
		return v, nil

	case PickedMsg:
		v.picking = false
		v.day = model.Midnight(msg.Day)
		v.dateInput.SetValue("")
		v.err = ""
		return v, nil

	case PickCanceledMsg:
		v.picking = false
		return v, nil

	case tea.KeyMsg:
		if v.picking {
			var cmd tea.Cmd
			v.picker, cmd = v.picker.Update(msg)
			return v, cmd
		}
		if v.confirm != confirmNone {
			return v.handleConfirm(msg)
		}
		return v.handleKey(msg)
	}

	return v.updateFocused(msg)
}

func (v FormView) handleKey(msg tea.KeyMsg) (FormView, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return v.save()

	case "esc":
		if v.Dirty() {
			v.confirm = confirmDiscard
			return v, nil
		}
		return v, emit(OpenHomeMsg{})

	case "ctrl+d":
		v.picker = NewPickerView(v.day, v.store.Tasks())
		v.picker.now = v.now
		v.picking = true
		return v, nil

	case "ctrl+x":
		if v.editing {
			v.confirm = confirmDelete
		}
		return v, nil

	case "tab", "down":
		if v.focus == FieldNotes && msg.String() == "down" {
			break
		}
		v = v.setFocus((v.focus + 1) % fieldCount)
		return v, nil

	case "shift+tab", "up":
		if v.focus == FieldNotes && msg.String() == "up" {
			break
		}
		v = v.setFocus((v.focus + fieldCount - 1) % fieldCount)
		return v, nil

	case "enter":
		switch v.focus {
		case FieldTitle:
			v = v.setFocus(FieldDate)
			return v, nil
		case FieldDate:
			if err := v.commitDate(); err != nil {
				v.err = err.Error()
				return v, nil
			}
			v.err = ""
			v = v.setFocus(FieldNotes)
			return v, nil
		}
	}

	return v.updateFocused(msg)
}

func (v FormView) handleConfirm(msg tea.KeyMsg) (FormView, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		kind := v.confirm
		v.confirm = confirmNone
		if kind == confirmDelete {
			v.store.Delete(v.taskID)
			v.deleted = true
			return v, tea.Batch(emit(OpenHomeMsg{}), status("Deleted"))
		}
		return v, emit(OpenHomeMsg{})
	case "n", "N", "esc":
		v.confirm = confirmNone
	}
	return v, nil
}

// save validates the form and writes it to the store.
// A failed validation leaves the store untouched.
func (v FormView) save() (FormView, tea.Cmd) {
	if err := v.commitDate(); err != nil {
		v.err = err.Error()
		return v, nil
	}

	draft := validate.Draft{
		Title: v.title.Value(),
		Notes: v.notes.Value(),
		Date:  v.day,
	}

	if !v.editing {
		task, err := draft.NewTask()
		if err != nil {
			v.err = err.Error()
			return v, nil
		}
		v.store.Add(task)
		return v, tea.Batch(emit(OpenHomeMsg{}), status(fmt.Sprintf("Added %q", task.Title)))
	}

	orig, ok := v.store.Get(v.taskID)
	if !ok {
		return v, tea.Batch(emit(OpenHomeMsg{}), status("Task no longer exists"))
	}
	updated, err := draft.Apply(orig)
	if err != nil {
		v.err = err.Error()
		return v, nil
	}
	v.store.Update(updated)
	return v, tea.Batch(emit(OpenHomeMsg{}), status("Saved"))
}

// commitDate parses the typed date, if any, into the chosen day
func (v *FormView) commitDate() error {
	text := strings.TrimSpace(v.dateInput.Value())
	if text == "" {
		return nil
	}
	day, ok := parseDate(text, v.now())
	if !ok {
		return fmt.Errorf("unrecognized date %q", text)
	}
	v.day = day
	v.dateInput.SetValue("")
	return nil
}

func (v FormView) setFocus(f FormField) FormView {
	v.focus = f
	v.title.Blur()
	v.dateInput.Blur()
	v.notes.Blur()
	switch f {
	case FieldTitle:
		v.title.Focus()
	case FieldDate:
		v.dateInput.Focus()
	case FieldNotes:
		v.notes.Focus()
	}
	return v
}

func (v FormView) updateFocused(msg tea.Msg) (FormView, tea.Cmd) {
	var cmd tea.Cmd
	switch v.focus {
	case FieldTitle:
		v.title, cmd = v.title.Update(msg)
	case FieldDate:
		v.dateInput, cmd = v.dateInput.Update(msg)
	case FieldNotes:
		v.notes, cmd = v.notes.Update(msg)
	}
	return v, cmd
}

func containsID(tasks []model.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

// View renders the form
func (v FormView) View() string {
	styles := theme.Current.Styles

	heading := "New to-do"
	if v.editing {
		heading = "Edit to-do"
	}

	field := func(f FormField, label, body string) string {
		box := styles.Input
		if v.focus == f {
			box = styles.InputFocused
		}
		return lipgloss.JoinVertical(lipgloss.Left, styles.Label.Render(label), box.Render(body))
	}

	dateLabel := "Date: " + dates.Label(v.day, v.now())
	if !model.SameDay(v.day, v.now()) {
		dateLabel += " (" + model.DayKey(v.day) + ")"
	}

	sections := []string{
		styles.Title.Render(heading),
		"",
		field(FieldTitle, "Title", v.title.View()),
		field(FieldDate, dateLabel, v.dateInput.View()),
		field(FieldNotes, "Notes", v.notes.View()),
	}

	if v.picking {
		sections = append(sections, v.picker.View())
	}

	switch v.confirm {
	case confirmDiscard:
		sections = append(sections, styles.Confirm.Render("Discard unsaved changes? (y/n)"))
	case confirmDelete:
		sections = append(sections, styles.Confirm.Render(fmt.Sprintf("Delete %q? (y/n)", v.initTitle)))
	}

	if v.err != "" {
		sections = append(sections, styles.Error.Render(v.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
