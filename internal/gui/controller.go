package gui

import (
	"sync"

	"navigate-photoactivation/internal/config"
	"navigate-photoactivation/internal/gui/photoactivation"
	"navigate-photoactivation/internal/logger"
)

// Controller populates the photoactivation panel from configuration and
// hands its values to the rest of the application.
type Controller struct {
	view   *View
	config config.Config
	logger logger.Logger

	// mu guards the fields below. Application shutdown calls Shutdown from
	// its own goroutine, and plugin code may read LastParameters off the
	// event goroutine.
	mu       sync.RWMutex
	last     photoactivation.Parameters
	haveLast bool
	onRead   []func(photoactivation.Parameters)
}

func NewController(cfg config.Config, log logger.Logger) *Controller {
	return &Controller{
		config: cfg,
		logger: log,
	}
}

func (c *Controller) SetView(view *View) {
	c.view = view
	c.populate()
}

// populate fills the combobox choices and initial values. The panel itself
// ships with no choices.
func (c *Controller) populate() {
	frame := c.view.Frame()

	choices := []struct {
		field   string
		options []string
	}{
		{photoactivation.FieldLaser, c.config.Lasers},
		{photoactivation.FieldPattern, c.config.Patterns},
	}
	for _, choice := range choices {
		if err := frame.SetChoices(choice.field, choice.options); err != nil {
			c.logger.Error("Controller", err, map[string]interface{}{"field": choice.field})
		}
	}

	if err := frame.Apply(c.config.Defaults); err != nil {
		c.logger.Warning("Controller", "ignored configured defaults", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.logger.Info("Controller", "panel populated", map[string]interface{}{
		"lasers":   len(c.config.Lasers),
		"patterns": len(c.config.Patterns),
		"defaults": len(c.config.Defaults),
	})
}

// Reset clears every field and reapplies the configured defaults.
func (c *Controller) Reset() {
	values := make(map[string]string)
	for _, field := range photoactivation.Fields() {
		values[field.Key] = ""
	}
	for key, value := range c.config.Defaults {
		values[key] = value
	}

	if err := c.view.Frame().Apply(values); err != nil {
		c.logger.Warning("Controller", "reset skipped unknown fields", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.view.SetStatus("Defaults restored")
}

// ReadParameters parses the panel and notifies subscribers. Parse failures
// are shown to the operator and returned.
func (c *Controller) ReadParameters() (photoactivation.Parameters, error) {
	params, err := c.view.Frame().Parameters()
	if err != nil {
		c.view.SetStatus("Invalid parameters")
		c.view.ShowError("Photoactivation parameters", err)
		return photoactivation.Parameters{}, err
	}

	c.mu.Lock()
	c.last = params
	c.haveLast = true
	listeners := append(([]func(photoactivation.Parameters))(nil), c.onRead...)
	c.mu.Unlock()

	c.logger.Info("Controller", "parameters read", map[string]interface{}{
		"laser":       params.Laser,
		"power":       params.Power,
		"duration_ms": params.DurationMs,
		"pattern":     params.Pattern,
	})
	c.view.SetStatus("Parameters read")

	for _, fn := range listeners {
		fn(params)
	}
	return params, nil
}

// OnParameters registers fn to receive every successful read.
func (c *Controller) OnParameters(fn func(photoactivation.Parameters)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRead = append(c.onRead, fn)
}

func (c *Controller) LastParameters() (photoactivation.Parameters, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last, c.haveLast
}

func (c *Controller) Shutdown() {
	c.mu.Lock()
	c.onRead = nil
	c.mu.Unlock()
	c.logger.Debug("Controller", "shutdown", nil)
}
