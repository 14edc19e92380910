package tui

import "github.com/charmbracelet/lipgloss"

// cardWidth is the number of cells used by one column on screen.
const cardWidth = 5

var (
	cardStyle     = lipgloss.NewStyle().Width(cardWidth)
	redStyle      = cardStyle.Foreground(lipgloss.Color("#D7263D")).Bold(true)
	blackStyle    = cardStyle.Foreground(lipgloss.Color("#E0E0E0")).Bold(true)
	faceDownStyle = cardStyle.Foreground(lipgloss.Color("#3A6EA5"))
	slotStyle     = cardStyle.Foreground(lipgloss.Color("#555555"))

	selectedColor = lipgloss.Color("#FFD700")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FB800"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))

	winStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("#FFD700"))
)
