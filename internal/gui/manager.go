package gui

import (
	"navigate-photoactivation/internal/config"
	"navigate-photoactivation/internal/gui/photoactivation"
	"navigate-photoactivation/internal/logger"

	"fyne.io/fyne/v2"
)

type Manager struct {
	window     fyne.Window
	controller *Controller
	view       *View
	logger     logger.Logger
	isShutdown bool
}

func NewManager(window fyne.Window, cfg config.Config, log logger.Logger) *Manager {
	manager := &Manager{
		window: window,
		logger: log,
	}

	manager.view = NewView(window, log)
	manager.controller = NewController(cfg, log)

	manager.view.SetController(manager.controller)
	manager.controller.SetView(manager.view)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"window_title": window.Title(),
	})

	return manager
}

func (m *Manager) Frame() *photoactivation.Frame {
	return m.view.Frame()
}

func (m *Manager) Controller() *Controller {
	return m.controller
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.view.GetMainContainer()
}

func (m *Manager) Show() {
	m.view.Show()
	m.logger.Info("GUIManager", "GUI displayed", nil)
}

func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.view.SetStatus(status)
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)

	if m.controller != nil {
		m.controller.Shutdown()
	}

	m.logger.Info("GUIManager", "shutdown completed", nil)
}
