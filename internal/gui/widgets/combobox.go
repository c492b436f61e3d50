package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Combobox is an editable drop-down whose text is free-form and whose choices are set later.
type Combobox struct {
	widget.SelectEntry

	Width int

	options []string
}

func NewCombobox(width int) *Combobox {
	c := &Combobox{Width: width}
	c.ExtendBaseWidget(c)
	c.SetOptions(nil)
	return c
}

func (c *Combobox) SetOptions(options []string) {
	c.options = append([]string(nil), options...)
	c.SelectEntry.SetOptions(c.options)
}

// Options returns a copy of the current choices.
func (c *Combobox) Options() []string {
	return append([]string(nil), c.options...)
}

func (c *Combobox) MinSize() fyne.Size {
	return c.SelectEntry.MinSize().Max(fyne.NewSize(CharWidth(c.Width), 0))
}
