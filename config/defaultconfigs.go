package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		Checkered:                false,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			BlackColor:        232,
			WhiteColor:        255,
			LineColor:         22,
			CursorColorFG:     226,
			CursorColorBG:     4,
			LastPlayedColorBG: 94,
			HintColor:         120,
		},
		Symbols: ConfigSymbols{
			BlackDisk: '●',
			WhiteDisk: '●',
			Empty:     '·',
			Hint:      '•',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			DefaultBoardSize: 8,
			ShowHints:        true,
			PlayerBlack:      "Black",
			PlayerWhite:      "White",
			RecordGames:      true,
		},
	}
}
