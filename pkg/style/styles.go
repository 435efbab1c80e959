package style

import "github.com/pterm/pterm"

// Shared pterm styles for command output
var (
	TitleStyle   = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	SuccessStyle = pterm.NewStyle(pterm.FgGreen)
	WarningStyle = pterm.NewStyle(pterm.FgYellow)
	ErrorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	MutedStyle   = pterm.NewStyle(pterm.FgGray)
)
