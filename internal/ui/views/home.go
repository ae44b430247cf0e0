package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/dayly/internal/dates"
	"github.com/dori/dayly/internal/model"
	"github.com/dori/dayly/internal/store"
	"github.com/dori/dayly/internal/ui/theme"
)

// HomeMode represents the current interaction mode of the home screen
type HomeMode int

const (
	HomeModeNormal HomeMode = iota
	HomeModeConfirmDelete
	HomeModeConfirmClear
	HomeModePicker
)

// chipWidth is the rendered width of one date chip including its border
const chipWidth = 7

// HomeView shows the date strip and the tasks of the selected day
type HomeView struct {
	store  *store.Store
	width  int
	height int

	selection dates.Selection
	snapshot  store.Snapshot
	cursor    int

	mode     HomeMode
	deleteID string
	picker   PickerView

	now func() time.Time
}

// NewHomeView creates the home screen centred on today
func NewHomeView(s *store.Store) HomeView {
	return newHomeView(s, time.Now)
}

func newHomeView(s *store.Store, now func() time.Time) HomeView {
	return HomeView{
		store:     s,
		selection: dates.NewSelection(dates.Generate(now())),
		snapshot:  s.Snapshot(),
		now:       now,
	}
}

// SetSize sets the view dimensions
func (v HomeView) SetSize(width, height int) HomeView {
	v.width = width
	v.height = height
	return v
}

// Selection returns the current date selection
func (v HomeView) Selection() dates.Selection {
	return v.selection
}

// Mode returns the current interaction mode
func (v HomeView) Mode() HomeMode {
	return v.mode
}

// Cursor returns the index of the highlighted task
func (v HomeView) Cursor() int {
	return v.cursor
}

// Visible returns the tasks on the selected day, derived from the newest snapshot
func (v HomeView) Visible() []model.Task {
	return v.selection.Visible(v.snapshot.Tasks)
}

// IsInputMode returns whether the view is capturing keys
func (v HomeView) IsInputMode() bool {
	return v.mode != HomeModeNormal
}

// Update handles messages
func (v HomeView) Update(msg tea.Msg) (HomeView, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		v.applySnapshot(msg.Snapshot)
		return v, nil

	case PickedMsg:
		v.mode = HomeModeNormal
		sel, ok := v.selection.SelectDay(msg.Day)
		if !ok {
			return v, status(fmt.Sprintf("%s is outside the date range", dates.Label(msg.Day, v.today())))
		}
		v.selection = sel
		v.cursor = 0
		return v, nil

	case PickCanceledMsg:
		v.mode = HomeModeNormal
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case HomeModeConfirmDelete:
			return v.handleDeleteConfirm(msg)
		case HomeModeConfirmClear:
			return v.handleClearConfirm(msg)
		case HomeModePicker:
			var cmd tea.Cmd
			v.picker, cmd = v.picker.Update(msg)
			return v, cmd
		}
		return v.handleNormalMode(msg)
	}

	return v, nil
}

func (v HomeView) handleNormalMode(msg tea.KeyMsg) (HomeView, tea.Cmd) {
	visible := v.Visible()

	switch msg.String() {
	case "h", "left":
		v.moveDay(-1)
	case "l", "right":
		v.moveDay(1)
	case "H":
		v.moveDay(-7)
	case "L":
		v.moveDay(7)
	case "t":
		v.selection = v.selection.Today()
		v.cursor = 0

	case "c":
		v.picker = NewPickerView(v.selection.Entry().Day, v.snapshot.Tasks)
		v.picker.now = v.now
		v.mode = HomeModePicker

	case "j", "down":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}

	case " ", "tab":
		if task, ok := v.current(visible); ok {
			v.store.Toggle(task.ID)
			v.applySnapshot(v.store.Snapshot())
		}

	case "enter", "e":
		if task, ok := v.current(visible); ok {
			return v, emit(OpenEditMsg{TaskID: task.ID})
		}

	case "a", "+":
		return v, emit(OpenCreateMsg{})

	case "d":
		if task, ok := v.current(visible); ok {
			v.deleteID = task.ID
			v.mode = HomeModeConfirmDelete
		}

	case "X":
		if len(visible) > 0 {
			v.mode = HomeModeConfirmClear
		}
	}

	return v, nil
}

// handleDeleteConfirm handles keypresses in delete confirmation
func (v HomeView) handleDeleteConfirm(msg tea.KeyMsg) (HomeView, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = HomeModeNormal
		v.store.Delete(v.deleteID)
		v.deleteID = ""
		v.applySnapshot(v.store.Snapshot())
		return v, status("Deleted")
	case "n", "N", "esc":
		v.mode = HomeModeNormal
		v.deleteID = ""
	}
	return v, nil
}

// handleClearConfirm handles keypresses in clear-day confirmation
func (v HomeView) handleClearConfirm(msg tea.KeyMsg) (HomeView, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = HomeModeNormal
		n := v.store.DeleteOnDay(v.selection.DayKey())
		v.applySnapshot(v.store.Snapshot())
		return v, status(fmt.Sprintf("Cleared %d task(s)", n))
	case "n", "N", "esc":
		v.mode = HomeModeNormal
	}
	return v, nil
}

// applySnapshot keeps the newest snapshot; stale ones are dropped
func (v *HomeView) applySnapshot(snap store.Snapshot) {
	if snap.Version < v.snapshot.Version {
		return
	}
	v.snapshot = snap
	v.clampCursor()
}

// today is the day the window was built around, so the header agrees
// with the strip's today chip
func (v HomeView) today() time.Time {
	return v.selection.Window().Reference()
}

func (v *HomeView) moveDay(delta int) {
	v.selection = v.selection.Move(delta)
	v.cursor = 0
}

func (v *HomeView) clampCursor() {
	n := len(v.Visible())
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v HomeView) current(visible []model.Task) (model.Task, bool) {
	if v.cursor < 0 || v.cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[v.cursor], true
}

// View renders the home screen
func (v HomeView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	styles := theme.Current.Styles
	entry := v.selection.Entry()

	var sections []string
	sections = append(sections, styles.Title.Render(dates.Label(entry.Day, v.today())))
	sections = append(sections, v.renderStrip())

	if v.mode == HomeModePicker {
		sections = append(sections, v.picker.View())
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, v.renderTasks())

	switch v.mode {
	case HomeModeConfirmDelete:
		title := ""
		if task, ok := v.store.Get(v.deleteID); ok {
			title = task.Title
		}
		sections = append(sections, styles.Confirm.Render(fmt.Sprintf("Delete %q? (y/n)", title)))
	case HomeModeConfirmClear:
		sections = append(sections, styles.Confirm.Render(
			fmt.Sprintf("Delete all %d task(s) on %s? (y/n)", len(v.Visible()), dates.Label(entry.Day, v.today()))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStrip renders the chips around the selected day
func (v HomeView) renderStrip() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	w := v.selection.Window()

	count := v.width / chipWidth
	start, end := stripRange(v.selection.Index(), count, w.Len())

	chips := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := w.At(i)
		style := styles.DateChip
		switch {
		case i == v.selection.Index():
			style = styles.DateChipSelected
		case e.IsToday:
			style = styles.DateChipToday
		case e.Day.Weekday() == time.Saturday || e.Day.Weekday() == time.Sunday:
			style = style.Foreground(t.Weekend)
		}
		chips = append(chips, style.Render(e.Day.Format("Mon")+"\n"+e.Day.Format("2")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// stripRange returns the half-open range of count entries centred on
// selected, shifted to stay inside [0, total)
func stripRange(selected, count, total int) (int, int) {
	if count < 1 {
		count = 1
	}
	if count > total {
		count = total
	}
	start := selected - count/2
	if start < 0 {
		start = 0
	}
	if start+count > total {
		start = total - count
	}
	return start, start + count
}

// renderTasks renders the checklist for the selected day
func (v HomeView) renderTasks() string {
	styles := theme.Current.Styles
	visible := v.Visible()

	if len(visible) == 0 {
		return styles.Empty.Render("No to-dos")
	}

	maxLen := v.width - 8
	lines := make([]string, 0, len(visible))
	for i, task := range visible {
		checkbox := styles.Checkbox.Render("☐")
		rowStyle := styles.TaskNormal
		if task.Done {
			checkbox = styles.CheckboxDone.Render("☑")
			rowStyle = styles.TaskDone
		}
		if i == v.cursor {
			rowStyle = styles.TaskCursor.Strikethrough(task.Done)
		}

		title := task.Title
		if maxLen > 3 && len([]rune(title)) > maxLen {
			title = string([]rune(title)[:maxLen-3]) + "..."
		}
		line := checkbox + rowStyle.Render(title)
		if task.Notes != "" {
			line += styles.Label.Render(" ✎")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
