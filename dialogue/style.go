package dialogue

import (
	"github.com/charmbracelet/lipgloss"
)

// These colors are from the gruvbox vim theme
// https://github.com/morhetz/gruvbox
var fg = lipgloss.AdaptiveColor{
	Light: "#3c3836",
	Dark:  "#ebdbb2",
}
var red = lipgloss.Color("#cc241d")
var green = lipgloss.Color("#98971a")
var yellow = lipgloss.Color("#d79921")
var blue = lipgloss.Color("#458588")
var orange = lipgloss.Color("#d65d0e")

var baseStyle = lipgloss.NewStyle().
	Foreground(fg)

var containerStyle = baseStyle.
	Foreground(blue).
	Bold(true)

var valueStyle = baseStyle.
	Foreground(green)

var timeStyle = baseStyle.
	Foreground(yellow)

var errorStyle = baseStyle.
	Foreground(red).
	Bold(true)

var titleStyle = lipgloss.
	NewStyle().
	MarginLeft(2).
	MarginTop(1)

var itemStyle = lipgloss.
	NewStyle().
	PaddingLeft(4)

var hintStyle = itemStyle.
	Foreground(orange).
	Italic(true)
