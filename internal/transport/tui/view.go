package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iamasit07/portfolio-connect4/internal/domain"
)

var (
	humanStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00e5ff"))
	aiStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f97316"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a2535"))
	winStyle    = lipgloss.NewStyle().Bold(true).Reverse(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00e5ff")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00e5ff")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const disc = "●"

func (m Model) View() string {
	winning := make(map[domain.Cell]bool, len(m.state.WinningLine))
	for _, cell := range m.state.WinningLine {
		winning[cell] = true
	}

	var board strings.Builder
	for c := 0; c < domain.Columns; c++ {
		if c == m.cursor && !m.state.Terminal {
			board.WriteString(cursorStyle.Render(" v"))
		} else {
			board.WriteString("  ")
		}
	}
	board.WriteByte('\n')

	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Columns; c++ {
			board.WriteByte(' ')
			board.WriteString(renderCell(m.state.Board[r][c], winning[domain.Cell{Row: r, Column: c}]))
		}
		if r < domain.Rows-1 {
			board.WriteByte('\n')
		}
	}

	var out strings.Builder
	out.WriteString(frameStyle.Render(board.String()))
	out.WriteString("\n")
	out.WriteString(helpStyle.Render(" 1 2 3 4 5 6 7"))
	out.WriteString("\n")
	out.WriteString(statusStyle.Render(m.status))
	out.WriteString("\n\n")
	out.WriteString(helpStyle.Render("←/→ move • enter drop • 1-7 drop in column • r replay • q quit"))
	out.WriteString("\n")
	return out.String()
}

func renderCell(p domain.PlayerID, highlight bool) string {
	var style lipgloss.Style
	switch p {
	case domain.Human:
		style = humanStyle
	case domain.AI:
		style = aiStyle
	default:
		style = emptyStyle
	}
	if highlight {
		style = style.Inherit(winStyle)
	}
	return style.Render(disc)
}
