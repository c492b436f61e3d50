package photoactivation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/data/binding"
)

// Parameters is a typed copy of the panel's values for consumers outside the UI.
type Parameters struct {
	Laser      string
	Power      float64
	DurationMs float64
	Pattern    string

	XGalvoPin      string
	YGalvoPin      string
	LaserSwitchPin string

	VoltsPerMicronX float64
	VoltsPerMicronY float64
	OffsetX         float64
	OffsetY         float64
}

// Parameters reads the current values of the panel.
func (f *Frame) Parameters() (Parameters, error) {
	return ReadParameters(f.variables)
}

// ReadParameters converts bound values into Parameters. Empty numeric fields
// read as zero; every malformed field is reported.
func ReadParameters(vars *Lookup[binding.String]) (Parameters, error) {
	r := &paramReader{vars: vars}

	p := Parameters{
		Laser:           r.text(FieldLaser),
		Power:           r.number(FieldPower),
		DurationMs:      r.number(FieldDuration),
		Pattern:         r.text(FieldPattern),
		XGalvoPin:       r.text(FieldXGalvoPin),
		YGalvoPin:       r.text(FieldYGalvoPin),
		LaserSwitchPin:  r.text(FieldLaserSwitchPin),
		VoltsPerMicronX: r.number(FieldVoltsPerMicronX),
		VoltsPerMicronY: r.number(FieldVoltsPerMicronY),
		OffsetX:         r.number(FieldOffsetX),
		OffsetY:         r.number(FieldOffsetY),
	}

	if err := errors.Join(r.errs...); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

type paramReader struct {
	vars *Lookup[binding.String]
	errs []error
}

func (r *paramReader) text(name string) string {
	data, ok := r.vars.Get(name)
	if !ok {
		r.errs = append(r.errs, fmt.Errorf("%w: %s", ErrUnknownField, name))
		return ""
	}
	value, err := data.Get()
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("read %s: %w", name, err))
		return ""
	}
	return strings.TrimSpace(value)
}

func (r *paramReader) number(name string) float64 {
	value := r.text(name)
	if value == "" {
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("parse %s: %w", name, err))
		return 0
	}
	return v
}
