package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dori/dayly/internal/dates"
	"github.com/spf13/cobra"
)

// ErrOutsideWindow is returned when --around falls outside the date window
var ErrOutsideWindow = fmt.Errorf("day is outside the %d-day window", dates.Size)

// NewDatesCmd creates the dates command
func NewDatesCmd() *cobra.Command {
	var (
		around string
		radius int
	)

	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Print the date strip around a day",
		Long:  "Print the days of the selectable window around a day, marking today.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDates(cmd.OutOrStdout(), time.Now(), around, radius)
		},
	}

	cmd.Flags().StringVar(&around, "around", "", "centre day as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&radius, "radius", 3, "number of days to show on each side")

	return cmd
}

// printDates writes one line per day of the window around the given day
func printDates(w io.Writer, now time.Time, around string, radius int) error {
	if radius < 0 {
		return errors.New("radius must not be negative")
	}

	window := dates.Generate(now)
	center := window.TodayIndex()

	if around != "" {
		day, err := time.ParseInLocation(dates.KeyLayout, around, now.Location())
		if err != nil {
			return fmt.Errorf("invalid --around %q: %w", around, err)
		}
		i, ok := window.IndexOf(day)
		if !ok {
			return fmt.Errorf("%w: %s", ErrOutsideWindow, around)
		}
		center = i
	}

	from := max(center-radius, 0)
	to := min(center+radius, window.Len()-1)

	for i := from; i <= to; i++ {
		e := window.At(i)
		mark := " "
		if i == center {
			mark = ">"
		}
		label := ""
		if e.IsToday {
			label = "  today"
		}
		if _, err := fmt.Fprintf(w, "%s %4d  %s  %s%s\n", mark, i-window.TodayIndex(), e.Key, e.DayKey(), label); err != nil {
			return err
		}
	}
	return nil
}
