package views

import (
	"strings"
	"time"

	"github.com/dori/dayly/internal/model"
)

// dateFormats are tried in order for typed dates
var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan 2",
	model.DayLayout,
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// parseDate turns typed input into a local midnight relative to now
func parseDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	today := model.Midnight(now)

	switch strings.ToLower(s) {
	case "":
		return time.Time{}, false
	case "today":
		return today, true
	case "tomorrow", "tom":
		return today.AddDate(0, 0, 1), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	case "nextweek":
		return today.AddDate(0, 0, 7), true
	}

	if wd, ok := weekdays[strings.ToLower(s)]; ok {
		return nextWeekday(today, wd), true
	}

	for _, format := range dateFormats {
		t, err := time.ParseInLocation(format, s, now.Location())
		if err != nil {
			continue
		}
		// No year given
		if t.Year() == 0 {
			built := time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
			// Feb 29 outside a leap year would roll over into March
			if built.Day() != t.Day() {
				return time.Time{}, false
			}
			t = built
		}
		return model.Midnight(t), true
	}

	return time.Time{}, false
}

// nextWeekday returns the next occurrence of day strictly after today
func nextWeekday(today time.Time, day time.Weekday) time.Time {
	daysUntil := int(day - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
