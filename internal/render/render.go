// Package render formats a project for terminal display. Output mirrors
// the layout of the EbSynth settings panel: grouped scalar fields followed
// by the interval table.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ebstools/ebsedit/internal/models"
)

var (
	colorHeading = lipgloss.Color("#DDA036")
	colorLabel   = lipgloss.Color("#9A9EA0")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)
	labelStyle   = lipgloss.NewStyle().Foreground(colorLabel)
)

type field struct {
	name  string
	value string
}

// Project returns a human-readable description of the project, grouped
// into the categories the EbSynth UI uses.
func Project(p models.Project) string {
	detail := fmt.Sprintf("%d (%s)", p.SynthesisDetail, models.SynthesisDetailName(p.SynthesisDetail))

	sections := []struct {
		title  string
		fields []field
	}{
		{"Project", []field{
			{"EbSynth version", p.ProgramVersion},
			{"Frames per second", formatFloat(p.FramesPerSecond)},
		}},
		{"Images", []field{
			{"Key images", p.KeysPath},
			{"Video images", p.VideoPath},
			{"Mask images", p.MaskPath},
		}},
		{"Weights", []field{
			{"Key images weight", formatFloat(p.KeysWeight)},
			{"Video images weight", formatFloat(p.VideoWeight)},
			{"Mask images weight", formatFloat(p.MaskWeight)},
			{"Mask images enabled", formatBool(p.UseMask)},
		}},
		{"Advanced", []field{
			{"Mapping", formatFloat(p.Mapping)},
			{"De-flicker", formatFloat(p.DeFlicker)},
			{"Diversity", formatFloat(p.Diversity)},
		}},
		{"Performance", []field{
			{"Synthesis detail", detail},
			{"Use GPU", formatBool(p.UseGPU)},
		}},
	}

	var b strings.Builder
	for _, s := range sections {
		b.WriteString(headingStyle.Render(s.title))
		b.WriteString("\n")

		width := 0
		for _, f := range s.fields {
			if len(f.name) > width {
				width = len(f.name)
			}
		}
		for _, f := range s.fields {
			label := labelStyle.Render(pad(f.name+":", width+1))
			b.WriteString(fmt.Sprintf("%s %s\n", label, f.value))
		}
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Intervals"))
	b.WriteString("\n")
	b.WriteString(Intervals(p.Intervals))
	b.WriteString("\n")

	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func usedSymbol(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}
