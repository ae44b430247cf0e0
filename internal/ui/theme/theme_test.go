package theme

import (
	"testing"

	"github.com/dori/dayly/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryConfigThemeExists(t *testing.T) {
	for _, name := range config.Themes {
		th, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, th.Name)
		assert.NotEmpty(t, th.DateSelected)
		assert.NotEmpty(t, th.Checked)
	}
	_, ok := ByName("solarized")
	assert.False(t, ok)
}

func TestNextCycles(t *testing.T) {
	defer SetTheme(Nord)

	SetTheme(Nord)
	seen := map[string]bool{}
	for range Available() {
		next := Next()
		seen[next.Name] = true
		SetTheme(next)
	}
	assert.Len(t, seen, len(Available()))
	assert.Equal(t, "nord", Current.Theme.Name, "cycling all themes returns to the start")
}

func TestStylesUseBackgroundAndSuccess(t *testing.T) {
	for _, th := range Available() {
		styles := NewStyles(th)
		assert.Equal(t, th.Success, styles.Status.GetForeground(), th.Name)
		assert.Equal(t, th.Background, styles.Logo.GetBackground(), th.Name)
	}
}
