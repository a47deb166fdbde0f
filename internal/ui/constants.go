package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSwap     = "🔁"
	IconCopy     = "📋"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window sizing
const (
	WindowMinWidth  float32 = 980
	WindowMinHeight float32 = 600
)

// Layout sizing
const (
	CardMinWidth      float32 = 400
	CardCornerRadius  float32 = 12
	CardBorderWidth   float32 = 1
	PickerWidth       float32 = 200
	SwapButtonWidth   float32 = 52
	TranslateBtnWidth float32 = 180
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)
