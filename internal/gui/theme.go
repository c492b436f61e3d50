package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PanelTheme keeps plugin panels compact and uses a dark-room friendly palette.
type PanelTheme struct{}

func NewPanelTheme() fyne.Theme {
	return &PanelTheme{}
}

func (t *PanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 26, B: 30, A: 255}
		}
		return color.RGBA{R: 248, G: 248, B: 246, A: 255}

	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 38, G: 41, B: 47, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}

	case theme.ColorNamePrimary:
		if variant == theme.VariantDark {
			return color.RGBA{R: 120, G: 200, B: 140, A: 255}
		}
		return color.RGBA{R: 46, G: 139, B: 87, A: 255}

	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 60, B: 60, A: 255}

	case theme.ColorNameFocus:
		return t.Color(theme.ColorNamePrimary, variant)

	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *PanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *PanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *PanelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return theme.DefaultTheme().Size(name)
	}
}
