package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"navigate-photoactivation/internal/config"
	"navigate-photoactivation/internal/gui"
	"navigate-photoactivation/internal/gui/photoactivation"
	"navigate-photoactivation/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	AppName    = "Photoactivation Plugin"
	AppID      = "edu.utsw.navigate.photoactivation"
	AppVersion = "1.0.0"

	windowWidth  float32 = 520
	windowHeight float32 = 560

	shutdownTimeout = 10 * time.Second
)

type shutdownHandler interface {
	Shutdown()
}

type Application struct {
	fyneApp       fyne.App
	window        fyne.Window
	guiManager    *gui.Manager
	logger        logger.Logger
	shutdownables []shutdownHandler
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	shutdown      chan struct{}
	shutdownOnce  sync.Once
}

func NewApplication(cfg config.Config) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
		Build:   1,
	})

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(gui.NewPanelTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	level := logger.ParseLevel(cfg.Log.Level)
	log := logger.NewConsoleLogger(level)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   AppVersion,
		"log_level": level.String(),
		"lasers":    cfg.Lasers,
		"patterns":  cfg.Patterns,
	})

	return newApplication(fyneApp, window, cfg, log), nil
}

func newApplication(fyneApp fyne.App, window fyne.Window, cfg config.Config, log logger.Logger) *Application {
	ctx, cancel := context.WithCancel(context.Background())
	guiManager := gui.NewManager(window, cfg, log)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		logger:     log,
		ctx:        ctx,
		cancel:     cancel,
		shutdown:   make(chan struct{}),
		shutdownables: []shutdownHandler{
			guiManager,
		},
	}

	guiManager.Controller().OnParameters(a.logParameters)
	a.setupMenu()
	return a
}

func (a *Application) logParameters(p photoactivation.Parameters) {
	a.logger.Debug("Application", "photoactivation parameters", map[string]interface{}{
		"laser":              p.Laser,
		"power":              p.Power,
		"duration_ms":        p.DurationMs,
		"pattern":            p.Pattern,
		"x_galvo_pin":        p.XGalvoPin,
		"y_galvo_pin":        p.YGalvoPin,
		"laser_switch_pin":   p.LaserSwitchPin,
		"volts_per_micron_x": p.VoltsPerMicronX,
		"volts_per_micron_y": p.VoltsPerMicronY,
		"offset_x":           p.OffsetX,
		"offset_y":           p.OffsetY,
	})
}

// Frame exposes the photoactivation panel to plugin code.
func (a *Application) Frame() *photoactivation.Frame {
	return a.guiManager.Frame()
}

func (a *Application) setupMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reset Parameters", a.guiManager.Controller().Reset),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAbout),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (a *Application) showAbout() {
	metadata := a.fyneApp.Metadata()

	name := metadata.Name
	if name == "" {
		name = AppName
	}
	version := metadata.Version
	if version == "" {
		version = AppVersion
	}

	aboutContent := container.NewVBox(
		widget.NewLabel(name),
		widget.NewLabel(fmt.Sprintf("Version: %s", version)),
		widget.NewLabel(fmt.Sprintf("Fields: %d", len(photoactivation.Fields()))),
		widget.NewLabel(""),
		widget.NewLabel(fmt.Sprintf("Go: %s", runtime.Version())),
		widget.NewLabel(fmt.Sprintf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)),
	)

	dialog.ShowCustom("About", "Close", aboutContent, a.window)
}

func (a *Application) setupSignalHandling() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			a.logger.Info("Application", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			a.initiateShutdown()
		case <-a.ctx.Done():
		}
	}()
}

func (a *Application) Run() error {
	a.setupSignalHandling()

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested via window close", nil)
		a.initiateShutdown()
		a.window.Close()
	})

	a.guiManager.Show()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.shutdown
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	}()

	a.fyneApp.Run()
	// Run also returns when the app quits on its own; release the quit goroutine.
	a.initiateShutdown()
	a.wg.Wait()
	return nil
}

// initiateShutdown may be called from the signal goroutine, the window close
// intercept and Run at once; only the first call proceeds.
func (a *Application) initiateShutdown() {
	first := false
	a.shutdownOnce.Do(func() {
		close(a.shutdown)
		first = true
	})
	if !first {
		return
	}

	a.logger.Info("Application", "shutdown sequence initiated", map[string]interface{}{
		"components": len(a.shutdownables),
	})

	a.cancel()

	for i := len(a.shutdownables) - 1; i >= 0; i-- {
		component := a.shutdownables[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			component.Shutdown()
		}()

		select {
		case <-done:
		case <-time.After(shutdownTimeout):
			a.logger.Warning("Application", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	a.logger.Info("Application", "shutdown sequence completed", nil)
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.initiateShutdown()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
