package widgets

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// ValidatedEntry is a single line text input sized in characters with an optional validator.
type ValidatedEntry struct {
	widget.Entry

	// Width is the minimum display width in characters.
	Width int

	check fyne.StringValidator
}

func NewValidatedEntry(width int, check fyne.StringValidator) *ValidatedEntry {
	e := &ValidatedEntry{Width: width, check: check}
	e.ExtendBaseWidget(e)
	e.Validator = e.validate
	return e
}

// Bind connects the entry to data, keeping the configured validator in place.
func (e *ValidatedEntry) Bind(data binding.String) {
	e.Entry.Bind(data)
	e.Validator = e.validate
}

func (e *ValidatedEntry) SetCheck(check fyne.StringValidator) {
	e.check = check
	e.Validator = e.validate
	e.Validate()
}

func (e *ValidatedEntry) MinSize() fyne.Size {
	return e.Entry.MinSize().Max(fyne.NewSize(CharWidth(e.Width), 0))
}

// validate accepts an empty value so untouched fields are not flagged.
func (e *ValidatedEntry) validate(text string) error {
	if text == "" || e.check == nil {
		return nil
	}
	return e.check(text)
}

// NumberValidator accepts any text that parses as a finite float.
func NumberValidator(text string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%q is not a number", text)
	}
	return nil
}
