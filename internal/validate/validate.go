// Package validate checks form input before it reaches the store.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/dori/dayly/internal/model"
	"github.com/go-playground/validator/v10"
)

// MaxTitleLength bounds the title field
const MaxTitleLength = 256

var (
	// ErrEmptyTitle is returned when the title is empty or only whitespace
	ErrEmptyTitle = errors.New("please enter a task title")
	// ErrTitleTooLong is returned when the title exceeds MaxTitleLength
	ErrTitleTooLong = fmt.Errorf("task title exceeds %d characters", MaxTitleLength)
	// ErrNoDate is returned when the draft has no date
	ErrNoDate = errors.New("task date is required")
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("notblank", notBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validator: %v", err))
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Draft is the raw content of the create/edit form
type Draft struct {
	Title string    `validate:"notblank,max=256"`
	Notes string    `validate:"max=4096"`
	Date  time.Time `validate:"required"`
}

// Validate reports the first problem with the draft
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Title" && fe.Tag() == "notblank":
			return ErrEmptyTitle
		case fe.Field() == "Title" && fe.Tag() == "max":
			return ErrTitleTooLong
		case fe.Field() == "Date":
			return ErrNoDate
		default:
			return fmt.Errorf("invalid %s: %s", strings.ToLower(fe.Field()), fe.Tag())
		}
	}
	return nil
}

// NewTask validates the draft and builds a new, not yet done task
func (d Draft) NewTask() (model.Task, error) {
	if err := d.Validate(); err != nil {
		return model.Task{}, err
	}
	return model.Task{
		ID:    model.NewID(),
		Title: SanitizeText(d.Title),
		Notes: SanitizeText(d.Notes),
		Date:  model.DayKey(d.Date),
	}, nil
}

// Apply validates the draft and returns the full replacement for orig.
// The id and done flag are carried over from orig.
func (d Draft) Apply(orig model.Task) (model.Task, error) {
	if err := d.Validate(); err != nil {
		return model.Task{}, err
	}
	return model.Task{
		ID:    orig.ID,
		Title: SanitizeText(d.Title),
		Notes: SanitizeText(d.Notes),
		Date:  model.DayKey(d.Date),
		Done:  orig.Done,
	}, nil
}

// TabWidth is the number of spaces a tab expands to, matching the notes editor
const TabWidth = 4

// SanitizeText trims whitespace, expands tabs and removes control
// characters except newline
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", TabWidth))

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' {
			continue
		}
		sanitized.WriteRune(r)
	}
	return sanitized.String()
}
