package morebutton

// Theme defines the colors the button resolves when no override is set.
type Theme struct {
	ButtonColor Color // Icon color
	Background  Color // Toolbar background, also the target of fades
	Muted       Color // Status and help text
	Accent      Color // Highlights
}

// DefaultTheme returns a dark theme.
func DefaultTheme() Theme {
	return Theme{
		ButtonColor: "#7aa2f7",
		Background:  "#1a1b26",
		Muted:       "#565f89",
		Accent:      "#bb9af7",
	}
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	return Theme{
		ButtonColor: "#2e7de9",
		Background:  "#e1e2e7",
		Muted:       "#848cb5",
		Accent:      "#9854f1",
	}
}
