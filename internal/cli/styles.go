// Package cli renders classification results for the terminal: lipgloss
// styles, tables, a progress bar and interrupt handling.
package cli

import (
	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	PrimaryColor = lipgloss.Color("#5B8DEF")
	SuccessColor = lipgloss.Color("#43B581")
	WarningColor = lipgloss.Color("#F0B232")
	ErrorColor   = lipgloss.Color("#E5534B")
	InfoColor    = lipgloss.Color("#8DA4C7")
	SubtleColor  = lipgloss.Color("#6E7681")
)

// levelColors runs from the broad ranks (cool) to the leaf (warm).
var levelColors = map[model.Level]lipgloss.Color{
	model.LevelDomain:  "#5B8DEF",
	model.LevelKingdom: "#4FA3D1",
	model.LevelPhylum:  "#3FB5A8",
	model.LevelClass:   "#55B86D",
	model.LevelOrder:   "#9BBF4A",
	model.LevelFamily:  "#D4B33C",
	model.LevelGenus:   "#E0893A",
	model.LevelSpecies: "#D9604C",
}

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Underline(true)

	// BoxStyle frames run metadata.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)
)

const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	RobotIcon   = "🤖"
)

// LevelStyle returns the bold heading style of a taxonomy level.
func LevelStyle(level model.Level) lipgloss.Style {
	color, ok := levelColors[level]
	if !ok {
		color = PrimaryColor
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle prefixes title with the robot icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(RobotIcon + " " + title)
}

// RenderBox draws content under a title inside a rounded border.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(title), content))
}
