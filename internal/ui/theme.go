package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette
var (
	PrimaryColor        = color.NRGBA{R: 26, G: 115, B: 232, A: 255}  // #1a73e8
	PrimaryHoverColor   = color.NRGBA{R: 21, G: 101, B: 192, A: 255}  // #1565c0
	TextColor           = color.NRGBA{R: 11, G: 83, B: 148, A: 255}   // #0b5394
	SubtextColor        = color.NRGBA{R: 95, G: 99, B: 104, A: 255}   // #5f6368
	LightBgTopColor     = color.NRGBA{R: 232, G: 241, B: 251, A: 255} // #e8f1fb
	LightBgBottomColor  = color.NRGBA{R: 207, G: 229, B: 255, A: 255} // #cfe5ff
	CardBackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 224}
	BorderColor         = color.NRGBA{R: 179, G: 209, B: 245, A: 255} // #b3d1f5
)

// TranslatorTheme is a compact light-blue theme
type TranslatorTheme struct{}

// NewTranslatorTheme creates a new theme
func NewTranslatorTheme() fyne.Theme {
	return &TranslatorTheme{}
}

// Color returns theme colors
func (t *TranslatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return PrimaryColor
	case theme.ColorNameHyperlink:
		return PrimaryHoverColor
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return BorderColor
	case theme.ColorNamePlaceHolder:
		return SubtextColor
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return LightBgTopColor
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return theme.DefaultTheme().Color(name, variant)
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 245}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return TextColor
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *TranslatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TranslatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *TranslatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInputRadius:
		return 10
	case theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
