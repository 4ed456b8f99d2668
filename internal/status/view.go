package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n")

	b.WriteString(renderProject(data))
	b.WriteString("\n")

	b.WriteString(renderRoots("📁 Project roots:", data.ProjectRoots))
	b.WriteString("\n")

	b.WriteString(renderRoots("🖼  Graphics roots:", data.GraphicsRoots))
	b.WriteString("\n")

	b.WriteString(renderConfig(data))

	if len(data.Commands) > 0 {
		b.WriteString("\n")
		b.WriteString(renderCommands(data))
	}

	return b.String()
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📄 Document: ") + valueStyle.Render(data.DocPath) + "\n")
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	return b.String()
}

func renderProject(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🏠 Project:") + "\n")

	if data.RootRecognized {
		b.WriteString("   " + keyStyle.Render("Root file: ") + valueStyle.Render(data.RootFile) + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Root file: ") + subtleStyle.Render("not recognized (using document directory)") + "\n")
	}
	b.WriteString("   " + keyStyle.Render("Root dir: ") + valueStyle.Render(data.RootDir) + "\n")

	if len(data.GraphicsPaths) > 0 {
		b.WriteString("   " + keyStyle.Render("\\graphicspath: ") + valueStyle.Render(strings.Join(data.GraphicsPaths, ", ")) + "\n")
	}
	return b.String()
}

func renderRoots(title string, roots []RootInfo) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title) + "\n")

	for _, root := range roots {
		if root.Exists {
			b.WriteString("   " + successStyle.Render("✓ ") + valueStyle.Render(root.Path) + "\n")
		} else {
			b.WriteString("   " + errorStyle.Render("✗ ") + subtleStyle.Render(root.Path) + "\n")
		}
	}
	return b.String()
}

func renderConfig(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⚙️  Configuration:") + "\n")

	if data.ConfigPath == "" {
		b.WriteString("   " + subtleStyle.Render("No config file (defaults in effect)") + "\n")
		return b.String()
	}

	b.WriteString("   " + keyStyle.Render("File: ") + valueStyle.Render(data.ConfigPath) + "\n")
	if data.ConfigValid {
		b.WriteString("   " + keyStyle.Render("Status: ") + successStyle.Render("✓ Valid") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Status: ") + errorStyle.Render(fmt.Sprintf("✗ %d error(s)", len(data.ConfigErrors))) + "\n")
		for _, e := range data.ConfigErrors {
			b.WriteString("      " + errorStyle.Render("• ") + subtleStyle.Render(fmt.Sprintf("[%s] %s", e.Field, e.Message)) + "\n")
		}
	}
	if data.LogLevel != "" {
		b.WriteString("   " + keyStyle.Render("Log level: ") + valueStyle.Render(data.LogLevel) + "\n")
	}
	return b.String()
}

func renderCommands(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⌨️  Commands with path arguments:") + "\n")
	b.WriteString("   " + subtleStyle.Render(strings.Join(data.Commands, "  ")) + "\n")
	return b.String()
}
