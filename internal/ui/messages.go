package ui

// Screen represents the active screen
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenHome
	ScreenCreate
	ScreenEdit
)

// String returns the display name for a screen
func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenHome:
		return "Home"
	case ScreenCreate:
		return "Create"
	case ScreenEdit:
		return "Edit"
	default:
		return "Unknown"
	}
}

// ThemeChangedMsg indicates the theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}
