package photoactivation

import (
	"errors"
	"fmt"
	"slices"

	"navigate-photoactivation/internal/gui/widgets"
	"navigate-photoactivation/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	// Title is the default text of the row 0 label.
	Title = "Photoactivation Plugin"

	// LabelWidth and InputWidth are measured in characters.
	LabelWidth = 30
	InputWidth = 20

	// PadX and PadY are the default horizontal and vertical padding around each cell.
	PadX float32 = 5
	PadY float32 = 3

	titleRow    = 0
	labelColumn = 0
	inputColumn = 1
	columns     = 2
)

// Errors returned by SetChoices, Apply and ReadParameters.
var (
	ErrUnknownField = errors.New("unknown field")
	ErrNotCombobox  = errors.New("field is not a combobox")
)

// Frame is the photoactivation plugin's parameter panel: a title row followed
// by one labeled input per field, each bound to a string value.
type Frame struct {
	container *fyne.Container
	cells     [][columns]fyne.CanvasObject
	rows      map[string]int

	variables *Lookup[binding.String]
	widgets   *Lookup[fyne.CanvasObject]

	title  string
	padX   float32
	padY   float32
	logger logger.Logger
}

// Option adjusts how NewFrame lays out the panel.
type Option func(*Frame)

// WithTitle replaces the default title text.
func WithTitle(title string) Option {
	return func(f *Frame) { f.title = title }
}

// WithPadding sets the horizontal and vertical padding around every cell.
func WithPadding(x, y float32) Option {
	return func(f *Frame) { f.padX, f.padY = x, y }
}

// WithLogger sets the logger used for construction and choice updates.
func WithLogger(log logger.Logger) Option {
	return func(f *Frame) { f.logger = log }
}

// NewFrame builds the panel and, when parent is non-nil, adds it to parent.
func NewFrame(parent *fyne.Container, opts ...Option) *Frame {
	f := &Frame{
		rows:      make(map[string]int, len(fields)),
		variables: newLookup[binding.String](len(fields)),
		widgets:   newLookup[fyne.CanvasObject](len(fields)),
		title:     Title,
		padX:      PadX,
		padY:      PadY,
		logger:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.buildLayout()

	if parent != nil {
		parent.Add(f.container)
	}

	f.logger.Debug("PhotoactivationFrame", "panel constructed", map[string]interface{}{
		"fields": f.variables.Len(),
		"rows":   len(f.cells),
	})

	return f
}

func (f *Frame) buildLayout() {
	title := widget.NewLabelWithStyle(f.title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	f.cells = append(f.cells, [columns]fyne.CanvasObject{title, layout.NewSpacer()})

	row := titleRow + 1
	for _, field := range fields {
		label := widget.NewLabelWithStyle(fmt.Sprintf("%-*s", LabelWidth, field.Name),
			fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})

		data := binding.NewString()
		input := newInput(field, data)

		f.variables.put(field.Name, data)
		f.widgets.put(field.Name, input)
		f.rows[field.Name] = row

		var cells [columns]fyne.CanvasObject
		cells[labelColumn] = label
		cells[inputColumn] = input
		f.cells = append(f.cells, cells)
		row++
	}

	// Equal-weight grid: every row and column stretches the same.
	f.container = container.New(layout.NewGridLayoutWithColumns(columns))
	for _, cells := range f.cells {
		for _, obj := range cells {
			f.container.Add(f.pad(obj))
		}
	}
}

func (f *Frame) pad(obj fyne.CanvasObject) fyne.CanvasObject {
	return container.New(layout.NewCustomPaddedLayout(f.padY, f.padY, f.padX, f.padX), obj)
}

func newInput(field Field, data binding.String) fyne.CanvasObject {
	switch field.Kind {
	case KindCombobox:
		combo := widgets.NewCombobox(InputWidth)
		combo.Bind(data)
		return combo
	case KindSpinbox:
		spin := widgets.NewValidatedSpinbox(InputWidth)
		spin.Bind(data)
		return spin
	default:
		var check fyne.StringValidator
		if field.Numeric {
			check = widgets.NumberValidator
		}
		entry := widgets.NewValidatedEntry(InputWidth, check)
		entry.Bind(data)
		return entry
	}
}

// Variables returns the value bound to each field, keyed by display name.
func (f *Frame) Variables() *Lookup[binding.String] {
	return f.variables
}

// Widgets returns the input widget of each field, keyed by display name.
func (f *Frame) Widgets() *Lookup[fyne.CanvasObject] {
	return f.widgets
}

// Container returns the grid holding every cell, for hosting outside a parent.
func (f *Frame) Container() *fyne.Container {
	return f.container
}

// Row reports the grid row a field was placed on. Row 0 holds the title.
func (f *Frame) Row(name string) (int, bool) {
	row, ok := f.rows[name]
	return row, ok
}

// At returns the unpadded object at row, col, or nil when out of range.
func (f *Frame) At(row, col int) fyne.CanvasObject {
	if row < 0 || row >= len(f.cells) || col < 0 || col >= columns {
		return nil
	}
	return f.cells[row][col]
}

// SetChoices populates the drop-down of a combobox field.
func (f *Frame) SetChoices(name string, options []string) error {
	obj, ok := f.widgets.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	combo, ok := obj.(*widgets.Combobox)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotCombobox, name)
	}
	combo.SetOptions(options)

	f.logger.Debug("PhotoactivationFrame", "choices set", map[string]interface{}{
		"field":   name,
		"options": len(options),
	})
	return nil
}

// Snapshot returns the current value of every field keyed by field key.
func (f *Frame) Snapshot() map[string]string {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		data, _ := f.variables.Get(field.Name)
		value, err := data.Get()
		if err != nil {
			f.logger.Warning("PhotoactivationFrame", "value unreadable", map[string]interface{}{
				"field": field.Name,
				"error": err.Error(),
			})
			continue
		}
		values[field.Key] = value
	}
	return values
}

// Apply sets the fields named by key in values. Unknown keys are reported
// after every known key has been applied.
func (f *Frame) Apply(values map[string]string) error {
	var errs []error

	for _, field := range fields {
		value, ok := values[field.Key]
		if !ok {
			continue
		}
		data, _ := f.variables.Get(field.Name)
		if err := data.Set(value); err != nil {
			errs = append(errs, fmt.Errorf("set %s: %w", field.Name, err))
		}
	}

	unknown := make([]string, 0)
	for key := range values {
		if _, ok := FieldByKey(key); !ok {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	for _, key := range unknown {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, key))
	}

	return errors.Join(errs...)
}
