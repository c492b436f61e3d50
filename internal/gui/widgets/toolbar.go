package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar sits under the parameter panel with the host actions and a status line.
type Toolbar struct {
	container   *fyne.Container
	resetButton *widget.Button
	readButton  *widget.Button
	statusLabel *widget.Label

	resetHandler func()
	readHandler  func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.resetButton = widget.NewButton("Reset", t.onResetClicked)

	t.readButton = widget.NewButton("Read Parameters", t.onReadClicked)
	t.readButton.Importance = widget.HighImportance

	t.statusLabel = widget.NewLabel("Ready")
}

func (t *Toolbar) buildLayout() {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 1.0
	border.StrokeColor = color.RGBA{R: 231, G: 231, B: 231, A: 255}

	content := container.NewBorder(
		nil, nil,
		container.NewHBox(t.resetButton, t.readButton),
		nil,
		container.NewHBox(widget.NewSeparator(), t.statusLabel),
	)

	t.container = container.NewStack(border, container.NewPadded(content))
}

func (t *Toolbar) onResetClicked() {
	if t.resetHandler != nil {
		t.resetHandler()
	}
}

func (t *Toolbar) onReadClicked() {
	if t.readHandler != nil {
		t.readHandler()
	}
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetResetHandler(handler func()) {
	t.resetHandler = handler
}

func (t *Toolbar) SetReadHandler(handler func()) {
	t.readHandler = handler
}

func (t *Toolbar) SetStatus(status string) {
	t.statusLabel.SetText(status)
}

func (t *Toolbar) Status() string {
	return t.statusLabel.Text
}
