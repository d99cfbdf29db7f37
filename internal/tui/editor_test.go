package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebstools/ebsedit/internal/models"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelStartsOnFirstField(t *testing.T) {
	m := NewModel(models.DefaultProject(), "test.ebs")

	if m.focused != FieldFPS {
		t.Errorf("expected focus on FPS field, got %d", m.focused)
	}
	if m.dirty {
		t.Error("expected a fresh editor to be clean")
	}
}

func TestNavigation(t *testing.T) {
	m := NewModel(models.DefaultProject(), "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.focused != FieldKeysPath {
		t.Errorf("expected focus on keys path after down, got %d", m.focused)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.focused != FieldFPS {
		t.Errorf("expected focus back on FPS, got %d", m.focused)
	}

	// Up on the first field stays put
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.focused != FieldFPS {
		t.Errorf("expected focus to stay on first field, got %d", m.focused)
	}
}

func TestToggleBoolField(t *testing.T) {
	m := NewModel(models.DefaultProject(), "")
	m.focused = FieldUseMask

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !m.project.UseMask {
		t.Error("expected mask to be enabled after toggle")
	}
	if !m.dirty {
		t.Error("expected editor to be dirty after toggle")
	}
}

func TestDetailCyclesThroughLevels(t *testing.T) {
	m := NewModel(models.DefaultProject(), "")
	m.focused = FieldDetail

	want := []int32{3, 4, 1, 2} // starts at the default of 2
	for _, level := range want {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(Model)
		if m.project.SynthesisDetail != level {
			t.Fatalf("expected detail %d, got %d", level, m.project.SynthesisDetail)
		}
	}
}

func TestDetailCycleResetsOutOfRangeValue(t *testing.T) {
	p := models.DefaultProject()
	p.SynthesisDetail = 99
	m := NewModel(p, "")

	m.toggleField(FieldDetail)
	if m.project.SynthesisDetail != 1 {
		t.Errorf("expected out-of-range detail to reset to 1, got %d", m.project.SynthesisDetail)
	}
}

func TestSetFieldFloat(t *testing.T) {
	m := NewModel(models.DefaultProject(), "")

	if err := m.setField(FieldFPS, "23.976"); err != nil {
		t.Fatalf("setField failed: %v", err)
	}
	if m.project.FramesPerSecond != 23.976 {
		t.Errorf("expected fps 23.976, got %g", m.project.FramesPerSecond)
	}

	if err := m.setField(FieldFPS, "not a number"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestSetFieldText(t *testing.T) {
	m := NewModel(models.DefaultProject(), "")

	if err := m.setField(FieldKeysPath, `styled\[###].png`); err != nil {
		t.Fatalf("setField failed: %v", err)
	}
	if m.project.KeysPath != `styled\[###].png` {
		t.Errorf("unexpected keys path %q", m.project.KeysPath)
	}
}

func TestAppendIntervals(t *testing.T) {
	p := models.DefaultProject()
	p.Intervals = nil
	m := NewModel(p, "")

	if err := m.appendIntervals("0:6:2:out{i}.png"); err != nil {
		t.Fatalf("appendIntervals failed: %v", err)
	}
	if len(m.project.Intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(m.project.Intervals))
	}
	if m.project.Intervals[0].OutputPath != "out1.png" {
		t.Errorf("unexpected output path %q", m.project.Intervals[0].OutputPath)
	}

	if err := m.appendIntervals("bogus"); err == nil {
		t.Error("expected error for malformed range description")
	}
}

func TestClearIntervals(t *testing.T) {
	m := NewModel(models.DefaultProject(), "")

	next, _ := m.Update(keyRune('c'))
	m = next.(Model)

	if len(m.project.Intervals) != 0 {
		t.Errorf("expected no intervals after clear, got %d", len(m.project.Intervals))
	}
}

func TestSaveWithoutPath(t *testing.T) {
	m := NewModel(models.DefaultProject(), "")

	next, _ := m.Update(keyRune('s'))
	m = next.(Model)

	if !m.isError {
		t.Error("expected an error message when saving without a path")
	}
}

func TestViewShowsFieldsAndIntervals(t *testing.T) {
	m := NewModel(models.DefaultProject(), "project.ebs")
	m.width = 80
	m.height = 40

	out := m.View()
	for _, want := range []string{
		"Frames per second",
		"Synthesis detail",
		"Intervals (1)",
		`out\[#####].png`,
		"project.ebs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
