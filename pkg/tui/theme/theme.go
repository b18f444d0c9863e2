package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the picker UI.
type Theme struct {
	Footer   FooterTheme
	Field    FieldTheme
	Popup    PanelTheme
	Calendar CalendarTheme
	Time     TimeTheme
	Modal    ModalTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Warn   lipgloss.Style
}

// FieldTheme styles the text fields pickers attach to.
type FieldTheme struct {
	Label       lipgloss.Style
	Box         lipgloss.Style
	Focused     lipgloss.Style
	Error       lipgloss.Style
	Placeholder lipgloss.Style
	Disabled    lipgloss.Style
}

// PanelTheme styles framed popups and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Hint  lipgloss.Style
}

// CalendarTheme styles the day grid and the month selector.
type CalendarTheme struct {
	Nav           lipgloss.Style
	NavDisabled   lipgloss.Style
	Weekday       lipgloss.Style
	Day           lipgloss.Style
	Disabled      lipgloss.Style
	Today         lipgloss.Style
	Selected      lipgloss.Style
	Cursor        lipgloss.Style
	RangeEdge     lipgloss.Style
	RangeInside   lipgloss.Style
	Month         lipgloss.Style
	MonthDisabled lipgloss.Style
	MonthSelected lipgloss.Style
	TimeLabel     lipgloss.Style
	TimeValue     lipgloss.Style
	TimeError     lipgloss.Style
}

// TimeTheme styles the hour/minute/period columns.
type TimeTheme struct {
	Frame    lipgloss.Style
	Header   lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
}

// ModalTheme styles centered modal overlays (e.g., help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

const (
	accentHex = "#5f87ff"
	baseHex   = "#1c1c1c"
	errorHex  = "#ff5f5f"
)

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := hex(accentHex)
	rangeInside := blend(accentHex, baseHex, 0.65)
	muted := lipgloss.Color("244")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		},
		Field: FieldTheme{
			Label:       lipgloss.NewStyle().Bold(true),
			Box:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
			Focused:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(accent).Padding(0, 1),
			Error:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(hex(errorHex)).Padding(0, 1),
			Placeholder: lipgloss.NewStyle().Foreground(muted),
			Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
		},
		Popup: PanelTheme{
			Frame: frame,
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Hint:  lipgloss.NewStyle().Foreground(muted),
		},
		Calendar: CalendarTheme{
			Nav:           lipgloss.NewStyle().Foreground(accent).Bold(true),
			NavDisabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Weekday:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:           lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Disabled:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Today:         lipgloss.NewStyle().Underline(true),
			Selected:      lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")).Bold(true),
			Cursor:        lipgloss.NewStyle().Reverse(true),
			RangeEdge:     lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")),
			RangeInside:   lipgloss.NewStyle().Background(rangeInside).Foreground(lipgloss.Color("15")),
			Month:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			MonthDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			MonthSelected: lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")),
			TimeLabel:     lipgloss.NewStyle().Foreground(muted),
			TimeValue:     lipgloss.NewStyle().Underline(true),
			TimeError:     lipgloss.NewStyle().Foreground(hex(errorHex)).Underline(true),
		},
		Time: TimeTheme{
			Frame:    frame,
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Option:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Selected: lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")),
			Cursor:   lipgloss.NewStyle().Reverse(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

func hex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return lipgloss.Color(s)
	}
	return c
}

// blend mixes two hex colours in Lab space; t=0 is a, t=1 is b.
func blend(a, b string, t float64) color.Color {
	ca, err := colorful.Hex(a)
	if err != nil {
		return lipgloss.Color(a)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return ca
	}
	return ca.BlendLab(cb, t).Clamped()
}
