package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// colorStyles holds one lipgloss style per palette color.
var colorStyles = newColorStyles()

func newColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(core.Palette))
	for _, c := range core.Palette {
		style := lipgloss.NewStyle()
		if code := c.Code(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one color so a style is applied per run
// rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := s.Cell(0, y).Color
		for x := range s.Width() {
			cell := s.Cell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// StatusInfo is what the status bar shows under the playfield.
type StatusInfo struct {
	Title     string
	Destroyed int
	Total     int
	Best      int
	Outcome   arkanoid.Outcome
	Phase     arkanoid.Phase
	RunID     string // Set once a finished round has been saved
}

// RenderStatus renders the single-line status bar, truncated to width.
func RenderStatus(info StatusInfo, width int) string {
	theme := GetTheme()
	sep := theme.HUDSeparator.Render(" | ")

	parts := []string{
		theme.HUDTitle.Render(info.Title),
		theme.HUDValue.Render(fmt.Sprintf("Blocks %d/%d", info.Destroyed, info.Total)),
		theme.HUDValue.Render(fmt.Sprintf("Best %d", info.Best)),
	}

	if info.Outcome != arkanoid.OutcomeNone && info.RunID != "" {
		parts = append(parts, theme.HUDValue.Render("run "+shortRunID(info.RunID)))
	}

	switch {
	case info.Outcome == arkanoid.OutcomeWin:
		parts = append(parts, theme.HUDWin.Render("YOU WIN"), theme.HUDControls.Render("space/enter/click replay  esc menu  q quit"))
	case info.Outcome == arkanoid.OutcomeLoss:
		parts = append(parts, theme.HUDLoss.Render("GAME OVER"), theme.HUDControls.Render("space/enter/click replay  esc menu  q quit"))
	case info.Phase == arkanoid.PhaseIdle:
		parts = append(parts, theme.HUDControls.Render("←/→ move  space launch  q quit"))
	default:
		parts = append(parts, theme.HUDControls.Render("←/→ move  q quit"))
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, sep))
}

// shortRunID trims a run ID to fit the status bar.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
