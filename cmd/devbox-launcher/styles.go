package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("82")
	colorWarning = lipgloss.Color("214")
	colorError   = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("245")

	statusOKStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	statusWarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	statusErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorError)

	pathStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	iconOK    = statusOKStyle.Render("✓")
	iconWarn  = statusWarnStyle.Render("!")
	iconError = statusErrorStyle.Render("✗")
)

func printSuccess(msg string) {
	fmt.Printf("%s %s\n", iconOK, msg)
}

func printWarning(msg string) {
	fmt.Printf("%s %s %s\n", iconWarn, statusWarnStyle.Render("Warning:"), msg)
}

func printError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", iconError, statusErrorStyle.Render("Error:")+" "+msg)
}
