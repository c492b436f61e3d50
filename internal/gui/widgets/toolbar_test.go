package widgets

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestToolbar_Handlers(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()

	assert.NotPanics(t, func() { test.Tap(toolbar.readButton) }, "no handler set")

	var resets, reads int
	toolbar.SetResetHandler(func() { resets++ })
	toolbar.SetReadHandler(func() { reads++ })

	test.Tap(toolbar.resetButton)
	test.Tap(toolbar.readButton)
	test.Tap(toolbar.readButton)

	assert.Equal(t, 1, resets)
	assert.Equal(t, 2, reads)
}

func TestToolbar_Status(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()
	assert.Equal(t, "Ready", toolbar.Status())

	toolbar.SetStatus("Parameters read")
	assert.Equal(t, "Parameters read", toolbar.Status())
	assert.NotNil(t, toolbar.GetContainer())
}
