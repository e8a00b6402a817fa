package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette shared by the setup and history screens.
var MenuColors = struct {
	Border      tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(29),  // sea green
	Label:       tcell.PaletteColor(250), // light gray
	Hint:        tcell.PaletteColor(245), // dim gray
	ButtonBG:    tcell.PaletteColor(22),  // felt green
	ButtonFocus: tcell.PaletteColor(35),  // jade
	ButtonText:  tcell.PaletteColor(255), // white
}
