package photoactivation

// Kind selects which input widget a field is built with.
type Kind int

const (
	KindCombobox Kind = iota
	KindSpinbox
	KindEntry
)

func (k Kind) String() string {
	switch k {
	case KindCombobox:
		return "combobox"
	case KindSpinbox:
		return "spinbox"
	case KindEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// Display names, used as the keys of Variables and Widgets.
const (
	FieldLaser           = "Laser"
	FieldPower           = "Power"
	FieldDuration        = "Duration (ms)"
	FieldPattern         = "Pattern"
	FieldXGalvoPin       = "Pinout - X Galvo"
	FieldYGalvoPin       = "Pinout - Y Galvo"
	FieldLaserSwitchPin  = "Pinout - Laser Switch"
	FieldVoltsPerMicronX = "Volts per Micron - X"
	FieldVoltsPerMicronY = "Volts per Micron - Y"
	FieldOffsetX         = "Photoactivation Offset X"
	FieldOffsetY         = "Photoactivation Offset Y"
)

// Field describes one row of the panel.
type Field struct {
	Name string
	// Key is the lowercase identifier used by config files and snapshots.
	Key  string
	Kind Kind
	// Numeric entries reject text that is not a number.
	Numeric bool
}

var fields = []Field{
	{Name: FieldLaser, Key: "laser", Kind: KindCombobox},
	{Name: FieldPower, Key: "power", Kind: KindSpinbox},
	{Name: FieldDuration, Key: "duration_ms", Kind: KindSpinbox},
	{Name: FieldPattern, Key: "pattern", Kind: KindCombobox},
	{Name: FieldXGalvoPin, Key: "x_galvo_pin", Kind: KindEntry},
	{Name: FieldYGalvoPin, Key: "y_galvo_pin", Kind: KindEntry},
	{Name: FieldLaserSwitchPin, Key: "laser_switch_pin", Kind: KindEntry},
	{Name: FieldVoltsPerMicronX, Key: "volts_per_micron_x", Kind: KindEntry, Numeric: true},
	{Name: FieldVoltsPerMicronY, Key: "volts_per_micron_y", Kind: KindEntry, Numeric: true},
	{Name: FieldOffsetX, Key: "offset_x", Kind: KindEntry, Numeric: true},
	{Name: FieldOffsetY, Key: "offset_y", Kind: KindEntry, Numeric: true},
}

// Fields returns the panel's rows in display order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// FieldByKey looks up a field by its config key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
