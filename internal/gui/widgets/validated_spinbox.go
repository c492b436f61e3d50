package widgets

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	DefaultSpinMin  = 0.0
	DefaultSpinMax  = 100000.0
	DefaultSpinStep = 1.0
)

// ValidatedSpinbox is a numeric entry stepped with the Up/Down keys or its arrow buttons.
// Text outside [Min, Max] or not parseable as a number fails validation.
type ValidatedSpinbox struct {
	widget.Entry

	Width int
	Min   float64
	Max   float64
	Step  float64
}

func NewValidatedSpinbox(width int) *ValidatedSpinbox {
	s := &ValidatedSpinbox{
		Width: width,
		Min:   DefaultSpinMin,
		Max:   DefaultSpinMax,
		Step:  DefaultSpinStep,
	}
	s.ExtendBaseWidget(s)
	s.Validator = s.validate
	s.ActionItem = container.NewHBox(
		widget.NewButtonWithIcon("", theme.MoveDownIcon(), s.Decrement),
		widget.NewButtonWithIcon("", theme.MoveUpIcon(), s.Increment),
	)
	return s
}

// Bind connects the spinbox to data, keeping the numeric validator in place.
func (s *ValidatedSpinbox) Bind(data binding.String) {
	s.Entry.Bind(data)
	s.Validator = s.validate
}

// SetRange updates the accepted bounds and step and revalidates the current text.
func (s *ValidatedSpinbox) SetRange(lo, hi, step float64) {
	s.Min, s.Max, s.Step = lo, hi, step
	s.Validate()
}

func (s *ValidatedSpinbox) Increment() {
	s.stepBy(s.Step)
}

func (s *ValidatedSpinbox) Decrement() {
	s.stepBy(-s.Step)
}

func (s *ValidatedSpinbox) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyUp:
		s.Increment()
	case fyne.KeyDown:
		s.Decrement()
	default:
		s.Entry.TypedKey(key)
	}
}

func (s *ValidatedSpinbox) MinSize() fyne.Size {
	return s.Entry.MinSize().Max(fyne.NewSize(CharWidth(s.Width), 0))
}

// Value returns the parsed number, or false when the text is empty or invalid.
func (s *ValidatedSpinbox) Value() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.Text), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (s *ValidatedSpinbox) stepBy(delta float64) {
	current, ok := s.Value()
	if !ok {
		current = s.Min
		delta = 0
	}
	next := math.Min(math.Max(current+delta, s.Min), s.Max)
	s.SetText(strconv.FormatFloat(next, 'f', -1, 64))
}

func (s *ValidatedSpinbox) validate(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if err := NumberValidator(text); err != nil {
		return err
	}
	v, _ := strconv.ParseFloat(text, 64)
	if v < s.Min || v > s.Max {
		return fmt.Errorf("%s is outside [%s, %s]", text,
			strconv.FormatFloat(s.Min, 'f', -1, 64),
			strconv.FormatFloat(s.Max, 'f', -1, 64))
	}
	return nil
}
