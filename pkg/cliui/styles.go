package cliui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for command output.
var (
	KeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	DimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	HashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	NameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Underline(true)
)
