package render

import (
	"strings"
	"testing"

	"github.com/ebstools/ebsedit/internal/models"
)

func TestProjectContainsAllSections(t *testing.T) {
	out := Project(models.DefaultProject())

	for _, want := range []string{
		"Project", "Images", "Weights", "Advanced", "Performance", "Intervals",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain section %q", want)
		}
	}
}

func TestProjectFieldValues(t *testing.T) {
	p := models.DefaultProject()
	p.FramesPerSecond = 24
	p.SynthesisDetail = 3

	out := Project(p)

	for _, want := range []string{
		"EBS05",
		"24",
		`keys\[#####].png`,
		"3 (Low)",
		"3500",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestIntervalsTable(t *testing.T) {
	out := Intervals([]models.Interval{
		{KeyFrame: 5, FirstFrame: 1, FinalFrame: 9, FirstFrameIsUsed: true, OutputPath: "out1.png"},
	})

	for _, want := range []string{"1", "Y", "5", "9", "N", "out1.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q", want)
		}
	}
}

func TestIntervalsEmpty(t *testing.T) {
	if got := Intervals(nil); !strings.Contains(got, "(none)") {
		t.Errorf("expected placeholder for empty interval list, got %q", got)
	}
}

func TestSynthesisDetailNames(t *testing.T) {
	tests := []struct {
		level int32
		want  string
	}{
		{1, "High"},
		{2, "Medium"},
		{3, "Low"},
		{4, "Garbage"},
		{0, "Unknown"},
		{99, "Unknown"},
		{-1, "Unknown"},
	}

	for _, tt := range tests {
		if got := models.SynthesisDetailName(tt.level); got != tt.want {
			t.Errorf("SynthesisDetailName(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
