package gui

import (
	"navigate-photoactivation/internal/gui/photoactivation"
	"navigate-photoactivation/internal/gui/widgets"
	"navigate-photoactivation/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

type View struct {
	window     fyne.Window
	controller *Controller
	logger     logger.Logger

	frame         *photoactivation.Frame
	toolbar       *widgets.Toolbar
	panelHost     *fyne.Container
	mainContainer *fyne.Container
}

func NewView(window fyne.Window, log logger.Logger) *View {
	view := &View{
		window: window,
		logger: log,
	}

	view.setupComponents()
	view.setupLayout()

	return view
}

func (v *View) SetController(controller *Controller) {
	v.controller = controller
	v.setupEventHandlers()
}

func (v *View) setupComponents() {
	v.panelHost = container.NewVBox()
	v.frame = photoactivation.NewFrame(v.panelHost, photoactivation.WithLogger(v.logger))
	v.toolbar = widgets.NewToolbar()
}

func (v *View) setupLayout() {
	v.mainContainer = container.NewBorder(
		nil,
		v.toolbar.GetContainer(),
		nil, nil,
		container.NewVScroll(v.panelHost),
	)
}

func (v *View) setupEventHandlers() {
	if v.controller == nil {
		return
	}

	v.toolbar.SetResetHandler(v.controller.Reset)
	v.toolbar.SetReadHandler(func() {
		_, _ = v.controller.ReadParameters()
	})
}

func (v *View) Frame() *photoactivation.Frame {
	return v.frame
}

func (v *View) GetMainContainer() *fyne.Container {
	return v.mainContainer
}

func (v *View) SetStatus(status string) {
	v.toolbar.SetStatus(status)
}

func (v *View) ShowError(title string, err error) {
	v.logger.Error("View", err, map[string]interface{}{"title": title})
	dialog.ShowError(err, v.window)
}

func (v *View) GetWindow() fyne.Window {
	return v.window
}

func (v *View) Show() {
	v.window.SetContent(v.mainContainer)
	v.window.Show()
}
