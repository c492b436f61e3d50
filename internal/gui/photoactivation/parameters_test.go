package photoactivation

import (
	"testing"

	"fyne.io/fyne/v2/data/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_Parameters(t *testing.T) {
	frame := newTestFrame(t)

	require.NoError(t, frame.Apply(map[string]string{
		"laser":              "488nm",
		"power":              "12.5",
		"duration_ms":        "250",
		"pattern":            "Square",
		"x_galvo_pin":        "PXI6259/ao0",
		"y_galvo_pin":        "PXI6259/ao1",
		"laser_switch_pin":   "PXI6259/port0/line0",
		"volts_per_micron_x": "0.012",
		"volts_per_micron_y": " 0.013 ",
		"offset_x":           "-3",
	}))

	p, err := frame.Parameters()
	require.NoError(t, err)

	assert.Equal(t, Parameters{
		Laser:           "488nm",
		Power:           12.5,
		DurationMs:      250,
		Pattern:         "Square",
		XGalvoPin:       "PXI6259/ao0",
		YGalvoPin:       "PXI6259/ao1",
		LaserSwitchPin:  "PXI6259/port0/line0",
		VoltsPerMicronX: 0.012,
		VoltsPerMicronY: 0.013,
		OffsetX:         -3,
		OffsetY:         0,
	}, p)
}

func TestFrame_ParametersEmpty(t *testing.T) {
	frame := newTestFrame(t)

	p, err := frame.Parameters()
	require.NoError(t, err)
	assert.Equal(t, Parameters{}, p)
}

func TestFrame_ParametersReportsEveryBadField(t *testing.T) {
	frame := newTestFrame(t)

	require.NoError(t, frame.Apply(map[string]string{
		"power":    "high",
		"offset_x": "left",
		"laser":    "488nm",
	}))

	_, err := frame.Parameters()
	require.Error(t, err)
	assert.Contains(t, err.Error(), FieldPower)
	assert.Contains(t, err.Error(), FieldOffsetX)
	assert.NotContains(t, err.Error(), FieldLaser)
}

func TestReadParameters_MissingField(t *testing.T) {
	vars := newLookup[binding.String](0)

	_, err := ReadParameters(vars)
	assert.ErrorIs(t, err, ErrUnknownField)
}
