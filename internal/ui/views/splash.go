package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/dayly/internal/ui/theme"
)

const logo = `     _             _
  __| | __ _ _   _| |_   _
 / _' |/ _' | | | | | | | |
| (_| | (_| | |_| | | |_| |
 \__,_|\__,_|\__, |_|\__, |
             |___/   |___/`

// splashTickMsg fires once when the splash duration is over.
// seq ties it to the splash instance that armed it.
type splashTickMsg struct {
	seq int
}

// SplashView shows the logo for a fixed duration
type SplashView struct {
	duration time.Duration
	seq      int
	done     bool
	width    int
	height   int
}

// NewSplashView creates a splash that advances after d
func NewSplashView(d time.Duration) SplashView {
	return SplashView{duration: d}
}

// Init arms the timer
func (v SplashView) Init() tea.Cmd {
	if v.duration <= 0 {
		return emit(OpenHomeMsg{})
	}
	seq := v.seq
	return tea.Tick(v.duration, func(time.Time) tea.Msg {
		return splashTickMsg{seq: seq}
	})
}

// SetSize sets the view dimensions
func (v SplashView) SetSize(width, height int) SplashView {
	v.width = width
	v.height = height
	return v
}

// Cancel disarms a pending timer; a tick that arrives later is ignored
func (v SplashView) Cancel() SplashView {
	v.seq++
	v.done = true
	return v
}

// Done reports whether the splash has finished or been cancelled
func (v SplashView) Done() bool {
	return v.done
}

// Update handles messages
func (v SplashView) Update(msg tea.Msg) (SplashView, tea.Cmd) {
	if v.done {
		return v, nil
	}

	switch msg := msg.(type) {
	case splashTickMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		v = v.Cancel()
		return v, emit(OpenHomeMsg{})

	case tea.KeyMsg:
		v = v.Cancel()
		return v, emit(OpenHomeMsg{})
	}

	return v, nil
}

// View renders the logo centred in the available space
func (v SplashView) View() string {
	styles := theme.Current.Styles
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.Logo.Render(logo),
		"",
		styles.Label.Render("plan your day • press any key"),
	)
	if v.width == 0 || v.height == 0 {
		return content
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, content)
}
