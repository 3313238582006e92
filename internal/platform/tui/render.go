package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/garden-defense/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorGardener:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorVegetable: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorCarried:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorSquirrel:  lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorRaccoon:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	core.ColorWater:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorTapOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorMessage:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
