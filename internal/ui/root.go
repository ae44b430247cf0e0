package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/dayly/internal/store"
	"github.com/dori/dayly/internal/ui/theme"
	"github.com/dori/dayly/internal/ui/views"
	"go.uber.org/zap"
)

// Options configures the root model
type Options struct {
	// SplashDuration of zero skips the splash screen
	SplashDuration time.Duration
	Logger         *zap.Logger
}

// RootModel is the main application model that routes between screens
type RootModel struct {
	store  *store.Store
	sub    *store.Subscription
	log    *zap.Logger
	keys   KeyMap
	help   help.Model
	width  int
	height int

	screen      Screen
	splash      views.SplashView
	home        views.HomeView
	form        views.FormView
	helpVisible bool

	// Status message
	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model. It must be called inside a store
// scope (see store.NewContext) and subscribes to that store.
func NewRootModel(ctx context.Context, opts Options) RootModel {
	s := store.MustFromContext(ctx)

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	h := help.New()
	h.ShowAll = true

	return RootModel{
		store:  s,
		sub:    s.Subscribe(),
		log:    log,
		keys:   DefaultKeyMap(),
		help:   h,
		screen: ScreenSplash,
		splash: views.NewSplashView(opts.SplashDuration),
		home:   views.NewHomeView(s),
	}
}

// Screen returns the active screen
func (m RootModel) Screen() Screen {
	return m.screen
}

// Close releases the store subscription
func (m RootModel) Close() {
	m.sub.Close()
}

// waitForSnapshot blocks until the store publishes and turns the snapshot
// into a message. It is re-armed after every delivery.
func waitForSnapshot(sub *store.Subscription) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-sub.C()
		if !ok {
			return nil
		}
		return views.SnapshotMsg{Snapshot: snap}
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return tea.Batch(m.splash.Init(), waitForSnapshot(m.sub))
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header (1 line) and footer (3 lines)
		contentHeight := m.height - 4
		m.splash = m.splash.SetSize(m.width, m.height)
		m.home = m.home.SetSize(m.width, contentHeight)
		if m.screen == ScreenCreate || m.screen == ScreenEdit {
			m.form = m.form.SetSize(m.width, contentHeight)
		}
		return m, nil

	case views.SnapshotMsg:
		m.log.Debug("snapshot received",
			zap.Uint64("version", msg.Snapshot.Version),
			zap.Int("tasks", len(msg.Snapshot.Tasks)),
		)
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		cmds = append(cmds, cmd)
		if m.screen == ScreenEdit {
			m.form, cmd = m.form.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, waitForSnapshot(m.sub))
		return m, tea.Batch(cmds...)

	case views.OpenHomeMsg:
		m.splash = m.splash.Cancel()
		m.switchTo(ScreenHome)
		return m, nil

	case views.OpenCreateMsg:
		m.form = views.NewCreateForm(m.store).SetSize(m.width, m.height-4)
		m.switchTo(ScreenCreate)
		return m, m.form.Init()

	case views.OpenEditMsg:
		form, ok := views.NewEditForm(m.store, msg.TaskID)
		if !ok {
			m.statusMsg = "Task no longer exists"
			return m, nil
		}
		m.form = form.SetSize(m.width, m.height-4)
		m.switchTo(ScreenEdit)
		return m, m.form.Init()

	case views.ErrorMsg:
		m.errorMsg = msg.Err.Error()
		m.log.Warn("screen error", zap.Error(msg.Err))
		return m, nil

	case views.StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := m.isInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			next := theme.Next()
			theme.SetTheme(next)
			return m, func() tea.Msg { return ThemeChangedMsg{ThemeName: next.Name} }
		}

		if !isInputMode && m.screen != ScreenSplash {
			if key.Matches(msg, m.keys.Help) {
				m.helpVisible = !m.helpVisible
				return m, nil
			}
			if m.helpVisible {
				if msg.String() == "esc" {
					m.helpVisible = false
				}
				return m, nil
			}
		}
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch m.screen {
	case ScreenSplash:
		m.splash, cmd = m.splash.Update(msg)
	case ScreenHome:
		m.home, cmd = m.home.Update(msg)
	case ScreenCreate, ScreenEdit:
		m.form, cmd = m.form.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *RootModel) switchTo(s Screen) {
	if m.screen != s {
		m.log.Debug("screen change", zap.Stringer("from", m.screen), zap.Stringer("to", s))
	}
	m.screen = s
	m.helpVisible = false
}

func (m RootModel) isInputMode() bool {
	switch m.screen {
	case ScreenHome:
		return m.home.IsInputMode()
	case ScreenCreate, ScreenEdit:
		return m.form.IsInputMode()
	}
	return false
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.screen == ScreenSplash {
		return m.splash.View()
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		switch m.screen {
		case ScreenHome:
			content = m.home.View()
		case ScreenCreate, ScreenEdit:
			content = m.form.View()
		}
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("dayly")

	viewStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	screenIndicator := viewStyle.Render(fmt.Sprintf("[%s]", m.screen))
	themeIndicator := viewStyle.Render(fmt.Sprintf("theme: %s", t.Name))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, screenIndicator)
	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(themeIndicator)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + themeIndicator
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles

	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = styles.Error.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = styles.Status.Render(m.statusMsg)
	}

	var line1, line2 string
	switch m.screen {
	case ScreenHome:
		switch m.home.Mode() {
		case views.HomeModeConfirmDelete, views.HomeModeConfirmClear:
			line1 = key("y", "confirm") + sep + key("n/esc", "cancel")
		case views.HomeModePicker:
			line1 = key("h/j/k/l", "days") + sep +
				key("H/L", "months") + sep +
				key("t", "today") + sep +
				key("enter", "pick") + sep +
				key("esc", "cancel")
		default:
			line1 = key("a", "add") + sep +
				key("enter", "edit") + sep +
				key("space", "done") + sep +
				key("d", "del") + sep +
				key("X", "clear day")
			line2 = key("h/l", "day") + sep +
				key("t", "today") + sep +
				key("c", "calendar") + sep +
				key("ctrl+t", "theme") + sep +
				key("?", "help")
		}

	case ScreenCreate, ScreenEdit:
		line1 = key("ctrl+s", "save") + sep +
			key("tab", "next field") + sep +
			key("ctrl+d", "pick date") + sep +
			key("esc", "cancel")
		if m.form.Editing() {
			line1 += sep + key("ctrl+x", "delete")
		}
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	styles := theme.Current.Styles
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("dayly help"),
		"",
		m.help.View(m.keys),
		"",
		styles.HelpDesc.Render("Press ? or esc to close"),
	)
}

// Run starts the terminal program inside the store scope of ctx and
// blocks until the user quits
func Run(ctx context.Context, opts Options) error {
	m := NewRootModel(ctx, opts)
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
