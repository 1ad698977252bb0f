package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 palette shared by status lines, the spinner and the viewer.
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	StyleDim   = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconCached = "cached"
	iconFresh  = "fresh"
)

// A statusIcon prefixes one-line status messages.
type statusIcon struct {
	glyph string
	style lipgloss.Style
}

var (
	statusSuccess = statusIcon{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	statusError   = statusIcon{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	statusInfo    = statusIcon{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (s statusIcon) print(format string, args ...any) {
	fmt.Println(s.style.Render(s.glyph) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { statusSuccess.print(format, args...) }
func printError(format string, args ...any)   { statusError.print(format, args...) }
func printInfo(format string, args ...any)    { statusInfo.print(format, args...) }

// printDetail prints an indented, dimmed line under a status message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printStats(plotCount, chartCount int, cached bool) {
	fmt.Println(statsLine(plotCount, chartCount, cached))
}

// statsLine summarizes a figure, e.g. "2 plots · 5 charts · cached".
// Zero counts are left out.
func statsLine(plotCount, chartCount int, cached bool) string {
	var parts []string
	if plotCount > 0 {
		parts = append(parts, StyleDim.Render(plural(plotCount, "plot")))
	}
	if chartCount > 0 {
		parts = append(parts, StyleDim.Render(plural(chartCount, "chart")))
	}
	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGreen).Render(iconCached))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGray).Render(iconFresh))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
