package render

import "github.com/charmbracelet/lipgloss"

// Kind classifies one glyph of the rendered grid.
type Kind int

const (
	Wall Kind = iota
	Open
	Unknown
	Route
	Start
	Exit
	numKinds
)

// Glyph is the symbol drawn for a Kind and the style that colors it.
type Glyph struct {
	Symbol string
	Style  lipgloss.Style
}

// Theme maps every Kind to a Glyph. Color is applied only when Colorize
// is set, so plain themes render byte-exact text.
type Theme struct {
	Glyphs   [numKinds]Glyph
	Colorize bool
}

// Blocks is the colored-square theme: red walls, green passages, blue
// route, black start and exit markers, white unknown cells.
func Blocks() Theme {
	return Theme{
		Glyphs: [numKinds]Glyph{
			Wall:    {Symbol: "🟥", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("9"))},
			Open:    {Symbol: "🟩", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("10"))},
			Unknown: {Symbol: "⬜", Style: lipgloss.NewStyle().Faint(true)},
			Route:   {Symbol: "🟦", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("12"))},
			Start:   {Symbol: "⬛", Style: lipgloss.NewStyle().Bold(true)},
			Exit:    {Symbol: "⬛", Style: lipgloss.NewStyle().Bold(true)},
		},
		Colorize: true,
	}
}

// ASCII is a one-character-per-glyph theme suited to logs and terminals
// without emoji, colored with ANSI styles.
func ASCII() Theme {
	return Theme{
		Glyphs: [numKinds]Glyph{
			Wall:    {Symbol: "#", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("1"))},
			Open:    {Symbol: ".", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("2"))},
			Unknown: {Symbol: "?", Style: lipgloss.NewStyle().Faint(true)},
			Route:   {Symbol: "*", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)},
			Start:   {Symbol: "S", Style: lipgloss.NewStyle().Reverse(true)},
			Exit:    {Symbol: "E", Style: lipgloss.NewStyle().Reverse(true)},
		},
		Colorize: true,
	}
}

// Plain returns t with coloring switched off.
func Plain(t Theme) Theme {
	t.Colorize = false
	return t
}

// ThemeByName returns "blocks" or "ascii"; ok is false for other names.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "blocks", "":
		return Blocks(), true
	case "ascii":
		return ASCII(), true
	default:
		return Theme{}, false
	}
}

func (t Theme) draw(k Kind) string {
	g := t.Glyphs[k]
	if !t.Colorize {
		return g.Symbol
	}

	return g.Style.Render(g.Symbol)
}
