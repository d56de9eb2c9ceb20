package models

// ThemeSettings is the display settings blob consumed by the presentation
// layer. The core only stores and round-trips it.
type ThemeSettings struct {
	DarkMode    bool
	CompactMode bool
}
