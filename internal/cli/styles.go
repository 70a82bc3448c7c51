// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#2E86AB") // Steel blue
	accentColor    = lipgloss.Color("#F6AE2D") // Amber
	successColor   = lipgloss.Color("#00AA00") // Green
	errorColor     = lipgloss.Color("#D7263D") // Red
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = lipgloss.Color("#FFFF00") // Yellow
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2).
			MarginTop(1)
)

// Output is where the Print helpers write. Errors always go to os.Stderr.
var Output io.Writer = os.Stdout

const appName = "audfx"

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Fprintln(Output, TitleStyle.Render(appName))
	fmt.Fprintf(Output, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints a key/value line
func PrintInfo(key, value string) {
	fmt.Fprintf(Output, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Fprintln(Output, HeaderStyle.Render(title))
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Fprintln(Output, BoxStyle.Render(content))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// FormatRange renders a parameter range such as "0.01 .. 10".
func FormatRange(lo, hi float64) string {
	return fmt.Sprintf("%g .. %g", lo, hi)
}

// PrintSummary prints the result of one render in a box.
func PrintSummary(effect, output string, in, out time.Duration, sampleRate int) {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ " + effect + " applied"))
	b.WriteString("\n\n")

	b.WriteString(KeyStyle.Render("Output:      "))
	b.WriteString(ValueStyle.Render(output))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Sample rate: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d Hz", sampleRate)))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Length:      "))
	b.WriteString(ValueStyle.Render(FormatDuration(in) + " -> " + FormatDuration(out)))

	PrintBox(b.String())
}
