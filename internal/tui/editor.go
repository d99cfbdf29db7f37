// Package tui implements the interactive project editor.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebstools/ebsedit/internal/config"
	"github.com/ebstools/ebsedit/internal/ebs"
	"github.com/ebstools/ebsedit/internal/intervals"
	"github.com/ebstools/ebsedit/internal/models"
	"github.com/ebstools/ebsedit/internal/render"
)

// Field identifies one editable project setting
type Field int

const (
	FieldFPS Field = iota
	FieldKeysPath
	FieldVideoPath
	FieldMaskPath
	FieldUseMask
	FieldKeysWeight
	FieldVideoWeight
	FieldMaskWeight
	FieldMapping
	FieldDeFlicker
	FieldDiversity
	FieldDetail
	FieldUseGPU
	fieldCount
)

type fieldKind int

const (
	kindFloat fieldKind = iota
	kindText
	kindBool
	kindDetail
)

type fieldDef struct {
	label string
	kind  fieldKind
}

var fieldDefs = [fieldCount]fieldDef{
	FieldFPS:         {"Frames per second", kindFloat},
	FieldKeysPath:    {"Key images", kindText},
	FieldVideoPath:   {"Video images", kindText},
	FieldMaskPath:    {"Mask images", kindText},
	FieldUseMask:     {"Mask images enabled", kindBool},
	FieldKeysWeight:  {"Key images weight", kindFloat},
	FieldVideoWeight: {"Video images weight", kindFloat},
	FieldMaskWeight:  {"Mask images weight", kindFloat},
	FieldMapping:     {"Mapping", kindFloat},
	FieldDeFlicker:   {"De-flicker", kindFloat},
	FieldDiversity:   {"Diversity", kindFloat},
	FieldDetail:      {"Synthesis detail", kindDetail},
	FieldUseGPU:      {"Use GPU", kindBool},
}

// Model is the bubbletea model for the project editor
type Model struct {
	project  models.Project
	savePath string

	focused        Field
	editing        bool
	promptingRange bool
	input          textinput.Model
	rangeInput     textinput.Model

	dirty   bool
	message string
	isError bool

	width  int
	height int
}

// NewModel creates an editor for the given project. savePath may be empty,
// in which case saving is disabled.
func NewModel(project models.Project, savePath string) Model {
	cfg, err := config.Load()
	if err != nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	input := textinput.New()
	input.CharLimit = 300
	input.Width = 44

	rangeInput := textinput.New()
	rangeInput.Placeholder = fmt.Sprintf("first:final:%d:%s", cfg.DefaultStep, cfg.DefaultTemplate)
	rangeInput.CharLimit = 300
	rangeInput.Width = 44

	return Model{
		project:    project,
		savePath:   savePath,
		input:      input,
		rangeInput: rangeInput,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// fieldValue returns the display value of a field
func (m Model) fieldValue(f Field) string {
	switch f {
	case FieldFPS:
		return formatFloat(m.project.FramesPerSecond)
	case FieldKeysPath:
		return m.project.KeysPath
	case FieldVideoPath:
		return m.project.VideoPath
	case FieldMaskPath:
		return m.project.MaskPath
	case FieldUseMask:
		return formatBool(m.project.UseMask)
	case FieldKeysWeight:
		return formatFloat(m.project.KeysWeight)
	case FieldVideoWeight:
		return formatFloat(m.project.VideoWeight)
	case FieldMaskWeight:
		return formatFloat(m.project.MaskWeight)
	case FieldMapping:
		return formatFloat(m.project.Mapping)
	case FieldDeFlicker:
		return formatFloat(m.project.DeFlicker)
	case FieldDiversity:
		return formatFloat(m.project.Diversity)
	case FieldDetail:
		return fmt.Sprintf("%d (%s)", m.project.SynthesisDetail,
			models.SynthesisDetailName(m.project.SynthesisDetail))
	case FieldUseGPU:
		return formatBool(m.project.UseGPU)
	}
	return ""
}

// setField parses raw and stores it into the focused field
func (m *Model) setField(f Field, raw string) error {
	switch fieldDefs[f].kind {
	case kindText:
		switch f {
		case FieldKeysPath:
			m.project.KeysPath = raw
		case FieldVideoPath:
			m.project.VideoPath = raw
		case FieldMaskPath:
			m.project.MaskPath = raw
		}
		return nil
	case kindFloat:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fmt.Errorf("%q is not a number", raw)
		}
		value := float32(v)
		switch f {
		case FieldFPS:
			m.project.FramesPerSecond = value
		case FieldKeysWeight:
			m.project.KeysWeight = value
		case FieldVideoWeight:
			m.project.VideoWeight = value
		case FieldMaskWeight:
			m.project.MaskWeight = value
		case FieldMapping:
			m.project.Mapping = value
		case FieldDeFlicker:
			m.project.DeFlicker = value
		case FieldDiversity:
			m.project.Diversity = value
		}
		return nil
	}
	return fmt.Errorf("field %s is not text-editable", fieldDefs[f].label)
}

// toggleField flips a bool field or cycles the synthesis detail level
func (m *Model) toggleField(f Field) {
	switch f {
	case FieldUseMask:
		m.project.UseMask = !m.project.UseMask
		m.dirty = true
	case FieldUseGPU:
		m.project.UseGPU = !m.project.UseGPU
		m.dirty = true
	case FieldDetail:
		// Cycle 1..4; out-of-range values found in the file restart at 1
		next := m.project.SynthesisDetail + 1
		if next < 1 || next > 4 {
			next = 1
		}
		m.project.SynthesisDetail = next
		m.dirty = true
	}
}

// appendIntervals parses a compact range description and appends the
// generated intervals to the project
func (m *Model) appendIntervals(spec string) error {
	rs, err := intervals.ParseRangeSpec(spec)
	if err != nil {
		return err
	}
	added := 0
	for iv := range rs.Intervals() {
		m.project.Intervals = append(m.project.Intervals, iv)
		added++
	}
	m.dirty = true
	m.setMessage(fmt.Sprintf("Appended %d interval(s)", added), false)
	return nil
}

func (m *Model) setMessage(text string, isError bool) {
	m.message = text
	m.isError = isError
}

// save encodes the project to the save path
func (m *Model) save() {
	if m.savePath == "" {
		m.setMessage("No output path; start the editor with a file argument", true)
		return
	}
	if err := ebs.WriteFile(m.savePath, m.project); err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.dirty = false
	m.setMessage("Saved "+m.savePath, false)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		if m.promptingRange {
			return m.updateRangePrompt(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := m.setField(m.focused, m.input.Value()); err != nil {
			m.setMessage(err.Error(), true)
		} else {
			m.dirty = true
			m.setMessage("", false)
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateRangePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := m.appendIntervals(m.rangeInput.Value()); err != nil {
			m.setMessage(err.Error(), true)
		}
		m.promptingRange = false
		m.rangeInput.Blur()
		return m, nil
	case "esc":
		m.promptingRange = false
		m.rangeInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.rangeInput, cmd = m.rangeInput.Update(msg)
	return m, cmd
}

func (m Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.focused > 0 {
			m.focused--
		}
		return m, nil

	case "down", "j":
		if m.focused < fieldCount-1 {
			m.focused++
		}
		return m, nil

	case "enter", " ":
		def := fieldDefs[m.focused]
		if def.kind == kindBool || def.kind == kindDetail {
			m.toggleField(m.focused)
			return m, nil
		}
		m.editing = true
		m.input.SetValue(m.fieldValue(m.focused))
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "a":
		m.promptingRange = true
		m.rangeInput.SetValue("")
		m.rangeInput.Focus()
		return m, textinput.Blink

	case "c":
		m.project.Intervals = nil
		m.dirty = true
		m.setMessage("Cleared intervals", false)
		return m, nil

	case "s":
		m.save()
		return m, nil
	}
	return m, nil
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

// Run starts the interactive editor for a project. savePath may be empty
// to run in read-only mode.
func Run(project models.Project, savePath string) error {
	p := tea.NewProgram(NewModel(project, savePath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}

// View renders the editor
func (m Model) View() string {
	s := renderHeader(m.savePath, m.dirty) + "\n\n"

	s += sectionStyle.Render(fmt.Sprintf("Settings  (version %s / %s, magic %d)",
		m.project.ProgramVersion, m.project.ProjectVersion, m.project.MagicNumber)) + "\n"

	for f := Field(0); f < fieldCount; f++ {
		// Pad before styling so ANSI codes do not skew the columns
		label := fmt.Sprintf("%-20s", fieldDefs[f].label)
		value := m.fieldValue(f)

		if f != m.focused {
			s += "  " + label + " " + value + "\n"
			continue
		}
		if m.editing {
			s += cursorStyle.Render("> "+label) + " " + m.input.View() + "\n"
			continue
		}
		s += cursorStyle.Render("> "+label) + " " + valueStyle.Render(value) + "\n"
	}

	s += "\n" + sectionStyle.Render(fmt.Sprintf("Intervals (%d)", len(m.project.Intervals))) + "\n"
	s += render.Intervals(m.project.Intervals)

	if m.promptingRange {
		s += "\n" + sectionStyle.Render("Append intervals (first:final:step:template)") + "\n"
		s += m.rangeInput.View() + "\n"
	}

	if m.message != "" {
		style := okStyle
		if m.isError {
			style = errorStyle
		}
		s += "\n" + style.Render(m.message) + "\n"
	}

	s += "\n" + helpStyle.Render("enter edit/toggle - a append intervals - c clear intervals - s save - q quit") + "\n"
	return s
}
