package widgets

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CharWidth returns the rendered width of n average characters in the current theme.
func CharWidth(n int) float32 {
	if n <= 0 {
		return 0
	}
	return fyne.MeasureText(strings.Repeat("0", n), theme.TextSize(), fyne.TextStyle{}).Width
}
