package ui

// Style holds the defaults the Factory uses for keys a stylesheet section leaves out.
type Style struct {
	TextColors      StateColors
	ButtonColors    StateColors
	PanelColors     StateColors
	InputColors     StateColors
	RowColors       StateColors
	RowTextColors   StateColors
	ScrollbarColors StateColors
	HandleColors    StateColors

	FontSize       float32
	ScrollbarWidth int
	TextPadding    int
	ListHeight     int
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColors:      StateColors{Idle: ColorWhite, Highlight: ColorWhite, Pressed: ColorYellow},
		ButtonColors:    StateColors{Idle: RGBA(50, 50, 50, 255), Highlight: RGBA(70, 70, 70, 255), Pressed: RGBA(90, 90, 90, 255)},
		PanelColors:     UniformColors(RGBA(20, 20, 20, 200)),
		InputColors:     StateColors{Idle: RGBA(30, 30, 30, 255), Highlight: RGBA(35, 35, 40, 255), Pressed: RGBA(40, 40, 50, 255)},
		RowColors:       StateColors{Idle: ColorTransparent, Highlight: RGBA(60, 60, 60, 255), Pressed: RGBA(50, 100, 150, 255)},
		RowTextColors:   StateColors{Idle: ColorLightGray, Highlight: ColorWhite, Pressed: ColorWhite},
		ScrollbarColors: UniformColors(RGBA(30, 30, 30, 255)),
		HandleColors:    StateColors{Idle: RGBA(80, 80, 80, 255), Highlight: RGBA(100, 100, 100, 255), Pressed: RGBA(120, 120, 120, 255)},

		FontSize:       16,
		ScrollbarWidth: 12,
		TextPadding:    4,
		ListHeight:     160,
	}
}

// GTAStyle returns a dark style with cyan and yellow accents.
func GTAStyle() Style {
	s := DefaultStyle()
	s.TextColors = StateColors{Idle: ColorWhite, Highlight: RGBA(255, 200, 0, 255), Pressed: RGBA(255, 200, 0, 255)}
	s.ButtonColors = StateColors{Idle: RGBA(40, 40, 40, 255), Highlight: RGBA(60, 80, 100, 255), Pressed: RGBA(0, 150, 200, 255)}
	s.PanelColors = UniformColors(RGBA(0, 0, 0, 220))
	s.InputColors = StateColors{Idle: RGBA(20, 20, 20, 255), Highlight: RGBA(25, 30, 35, 255), Pressed: RGBA(30, 40, 50, 255)}
	s.RowColors = StateColors{Idle: ColorTransparent, Highlight: RGBA(50, 70, 90, 255), Pressed: RGBA(0, 120, 180, 255)}
	s.HandleColors = StateColors{Idle: RGBA(0, 100, 150, 255), Highlight: RGBA(0, 150, 200, 255), Pressed: RGBA(0, 200, 255, 255)}
	return s
}
