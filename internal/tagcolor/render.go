package tagcolor

import "github.com/charmbracelet/lipgloss"

// Render paints the tag in the shade of its preset color.
// Colors outside the palette leave the tag unstyled.
func Render(tag, color string) string {
	hex, ok := HexOf(color)
	if !ok {
		return tag
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Bold(true).
		Render(tag)
}
