package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bitlens/bitlens/engine"
	"github.com/bitlens/bitlens/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	hexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err      error
	layout   *schema.Layout
	buf      []byte
	path     string
	decoded  []engine.FieldValue
	input    textinput.Model
	status   string
	selected int
	state    modelState
	dirty    bool
}

type modelState int

const (
	stateBrowse modelState = iota
	stateEdit
)

func newInspectorModel(layout *schema.Layout, buf []byte, path string) *inspectorModel {
	m := &inspectorModel{
		layout: layout,
		buf:    buf,
		path:   path,
		state:  stateBrowse,
	}
	m.refresh()
	return m
}

func (m *inspectorModel) refresh() {
	decoded, err := engine.ReadAll(m.layout, m.buf)
	if err != nil {
		m.err = err
		return
	}
	m.decoded = decoded
	m.err = nil
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.decoded)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.decoded) == 0 {
					break
				}
				m.startEdit()
			case stateEdit:
				m.commitEdit()
			}

		case "esc":
			if m.state == stateEdit {
				m.state = stateBrowse
				m.status = ""
			}

		case "ctrl+s":
			if m.state == stateBrowse && m.dirty {
				if err := os.WriteFile(m.path, m.buf, 0o644); err != nil {
					m.status = errorStyle.Render(err.Error())
				} else {
					m.dirty = false
					m.status = fmt.Sprintf("saved %s", m.path)
				}
			}
		}
	}

	if m.state == stateEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *inspectorModel) startEdit() {
	fv := m.decoded[m.selected]
	ti := textinput.New()
	ti.Placeholder = fv.Field.Kind().String()
	ti.SetValue(fv.Value.String())
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30
	m.input = ti
	m.state = stateEdit
	m.status = ""
}

func (m *inspectorModel) commitEdit() {
	fv := m.decoded[m.selected]
	v, err := parseValue(fv.Field, strings.TrimSpace(m.input.Value()))
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return
	}
	if err := engine.Write(m.layout, fv.Field.Name(), v, m.buf); err != nil {
		m.status = errorStyle.Render(err.Error())
		return
	}
	m.dirty = true
	m.state = stateBrowse
	m.status = fmt.Sprintf("%s = %s", fv.Field.Name(), v)
	m.refresh()
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	title := m.layout.Name()
	if title == "" {
		title = "layout"
	}
	if m.dirty {
		title += " *"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf(" %s - %d bits", title, m.layout.TotalBits())))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	for i, fv := range m.decoded {
		f := fv.Field
		line := fmt.Sprintf("  %-20s %s = %s",
			f.Name(),
			typeStyle.Render(fmt.Sprintf("%-5s [%d:%d)", f.Kind(), f.BitOffset(), f.BitOffset()+f.BitWidth())),
			valueStyle.Render(fv.Value.String()),
		)
		if i == m.selected && m.state == stateBrowse {
			line = selectedStyle.Render("> " + line[2:])
		} else if i == m.selected {
			line = fieldStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.state == stateEdit {
		fv := m.decoded[m.selected]
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  New value for %s: %s\n", fieldStyle.Render(fv.Field.Name()), m.input.View()))
	}

	b.WriteString("\n")
	for offset := 0; offset < len(m.buf); offset += 16 {
		b.WriteString(hexStyle.Render(dumpLine(m.buf, offset)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.state {
	case stateBrowse:
		b.WriteString(helpStyle.Render("↑/↓: select • enter: edit • ctrl+s: save • q: quit"))
	case stateEdit:
		b.WriteString(helpStyle.Render("enter: apply • esc: cancel"))
	}
	return b.String()
}

func runInteractive(layout *schema.Layout, buf []byte, path string) error {
	p := tea.NewProgram(newInspectorModel(layout, buf, path))
	_, err := p.Run()
	return err
}
