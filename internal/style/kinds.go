package style

import "github.com/charmbracelet/lipgloss"

// Glyph is the terminal counterpart of an image: a short string drawn in
// place of a picture, such as an icon or checkbox mark.
type Glyph string

type (
	ColorStyle = Style[lipgloss.TerminalColor]
	ColorGroup = Group[lipgloss.TerminalColor]
	GlyphStyle = Style[Glyph]
	GlyphGroup = Group[Glyph]
)

// Color returns a plain color style for a hex code or ANSI index.
func Color(value string) Literal[lipgloss.TerminalColor] {
	return Value[lipgloss.TerminalColor](lipgloss.Color(value))
}

// Icon returns a plain glyph style.
func Icon(value string) Literal[Glyph] {
	return Value(Glyph(value))
}
