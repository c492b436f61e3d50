package app

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"navigate-photoactivation/internal/config"
	"navigate-photoactivation/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T, buf *bytes.Buffer) *Application {
	t.Helper()
	fyneApp := test.NewTempApp(t)
	window := fyneApp.NewWindow(AppName)

	cfg := config.Config{
		Lasers:   []string{"488nm"},
		Patterns: []string{"Point"},
		Defaults: map[string]string{"laser": "488nm"},
	}
	return newApplication(fyneApp, window, cfg, logger.NewZerolog(buf, zerolog.DebugLevel))
}

func TestApplication_LogsParametersOnRead(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApplication(t, &buf)

	_, err := a.guiManager.Controller().ReadParameters()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "photoactivation parameters")
	assert.Contains(t, buf.String(), `"laser":"488nm"`)
}

func TestApplication_FrameIsPopulated(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApplication(t, &buf)

	assert.Equal(t, 11, a.Frame().Variables().Len())
	assert.Equal(t, "488nm", a.Frame().Snapshot()["laser"])
	assert.NotNil(t, a.window.MainMenu())
}

func TestApplication_ShutdownOnce(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApplication(t, &buf)

	require.NoError(t, a.Shutdown(context.Background()))
	require.NoError(t, a.Shutdown(context.Background()))

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("shutdown sequence initiated")))
	assert.ErrorIs(t, a.ctx.Err(), context.Canceled)
}

func TestApplication_ShutdownWaitsForSignalWatcher(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApplication(t, &buf)

	a.setupSignalHandling()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, a.Shutdown(ctx))
}

func TestApplication_ShutdownHonoursDeadline(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApplication(t, &buf)

	release := make(chan struct{})
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-release
	}()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, a.Shutdown(ctx), context.DeadlineExceeded)
}

func TestApplication_ConcurrentShutdownRunsOnce(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApplication(t, &buf)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.initiateShutdown()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("shutdown sequence initiated")))
}
