package commands

import (
	"context"
	"fmt"

	"github.com/dori/dayly/internal/app"
	"github.com/dori/dayly/internal/config"
	"github.com/dori/dayly/internal/ui"
	"github.com/dori/dayly/internal/ui/theme"
	"github.com/spf13/cobra"
)

// rootFlags holds the flags that override the config file
type rootFlags struct {
	configPath string
	theme      string
	noSplash   bool
	demo       bool
}

// NewRootCmd creates the command that runs the terminal UI
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "dayly",
		Short:         "A day-by-day to-do list for the terminal",
		Long:          "dayly keeps a checklist per calendar day. Tasks live in memory for the session.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dayly/config.toml)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "theme name (nord, dracula, gruvbox, catppuccin)")
	cmd.Flags().BoolVar(&flags.noSplash, "no-splash", false, "skip the splash screen")
	cmd.Flags().BoolVar(&flags.demo, "demo", false, "start with two sample tasks for today")

	return cmd
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(flags rootFlags) (config.Config, error) {
	path := flags.configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}

	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.noSplash {
		cfg.SplashSeconds = 0
	}
	if flags.demo {
		cfg.SeedDemo = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	t, ok := theme.ByName(cfg.Theme)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrInvalidTheme, cfg.Theme)
	}
	theme.SetTheme(t)

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	return ui.Run(application.Context(ctx), ui.Options{
		SplashDuration: cfg.SplashDuration(),
		Logger:         application.Logger.Named("ui"),
	})
}
