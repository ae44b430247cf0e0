package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/dayly/internal/model"
	"github.com/dori/dayly/internal/ui/theme"
)

// PickerView is a month grid used to jump to a day
type PickerView struct {
	// Month being displayed
	year  int
	month time.Month

	// Selected day of month
	selectedDay int

	// Canonical day keys that have at least one task
	marked map[string]bool

	now func() time.Time
}

// NewPickerView opens the grid on day, marking the days tasks fall on
func NewPickerView(day time.Time, tasks []model.Task) PickerView {
	marked := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		marked[t.Date] = true
	}
	return PickerView{
		year:        day.Year(),
		month:       day.Month(),
		selectedDay: day.Day(),
		marked:      marked,
		now:         time.Now,
	}
}

// Selected returns the highlighted day at local midnight
func (v PickerView) Selected() time.Time {
	return time.Date(v.year, v.month, v.selectedDay, 0, 0, 0, 0, time.Local)
}

// Update handles messages
func (v PickerView) Update(msg tea.Msg) (PickerView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	daysInMonth := v.daysInMonth()

	switch keyMsg.String() {
	case "h", "left":
		if v.selectedDay > 1 {
			v.selectedDay--
		}

	case "l", "right":
		if v.selectedDay < daysInMonth {
			v.selectedDay++
		}

	case "k", "up":
		if v.selectedDay > 7 {
			v.selectedDay -= 7
		}

	case "j", "down":
		if v.selectedDay+7 <= daysInMonth {
			v.selectedDay += 7
		}

	case "H", "pgup":
		v.month--
		if v.month < 1 {
			v.month = 12
			v.year--
		}
		v.clampSelectedDay()

	case "L", "pgdown":
		v.month++
		if v.month > 12 {
			v.month = 1
			v.year++
		}
		v.clampSelectedDay()

	case "t":
		now := v.now()
		v.year = now.Year()
		v.month = now.Month()
		v.selectedDay = now.Day()

	case "g":
		v.selectedDay = 1

	case "G":
		v.selectedDay = daysInMonth

	case "enter":
		return v, emit(PickedMsg{Day: v.Selected()})

	case "esc", "q":
		return v, emit(PickCanceledMsg{})
	}

	return v, nil
}

// daysInMonth returns the number of days in the displayed month
func (v PickerView) daysInMonth() int {
	return time.Date(v.year, v.month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// clampSelectedDay keeps the selected day valid for the displayed month
func (v *PickerView) clampSelectedDay() {
	if n := v.daysInMonth(); v.selectedDay > n {
		v.selectedDay = n
	}
}

// View renders the month grid
func (v PickerView) View() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles
	const width = 21

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s %d", v.month, v.year))

	lines := []string{
		header,
		lipgloss.NewStyle().Foreground(t.Subtle).Render("Su Mo Tu We Th Fr Sa"),
	}

	startWeekday := int(time.Date(v.year, v.month, 1, 0, 0, 0, 0, time.Local).Weekday())
	daysInMonth := v.daysInMonth()
	now := v.now()

	var week []string
	for i := 0; i < startWeekday; i++ {
		week = append(week, "   ")
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(v.year, v.month, day, 0, 0, 0, 0, time.Local)
		hasTasks := v.marked[model.DayKey(date)]
		isSelected := day == v.selectedDay
		isToday := model.SameDay(date, now)

		dayStyle := lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			dayStyle = dayStyle.Foreground(t.Weekend)
		}
		if hasTasks {
			dayStyle = dayStyle.Foreground(t.Info)
		}
		if isToday {
			dayStyle = dayStyle.Foreground(t.DateToday).Bold(true)
		}
		if isSelected {
			dayStyle = dayStyle.Background(t.Highlight).Foreground(t.DateSelected).Bold(true)
		}

		dayStr := fmt.Sprintf("%2d", day)
		if hasTasks {
			dayStr += "•"
		} else {
			dayStr += " "
		}
		week = append(week, dayStyle.Render(dayStr))

		// Saturday ends a row
		if (startWeekday+day)%7 == 0 {
			lines = append(lines, strings.Join(week, ""))
			week = nil
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, "   ")
		}
		lines = append(lines, strings.Join(week, ""))
	}

	lines = append(lines, "", styles.HelpDesc.Render("enter pick • esc cancel • t today"))

	return styles.Panel.Render(strings.Join(lines, "\n"))
}
