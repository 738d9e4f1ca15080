package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/hdf5"
	"github.com/wippyai/hdf5/sys"
)

// maxShown bounds the property names drawn at once in the browse view.
const maxShown = 18

type interactiveModel struct {
	err      error
	plist    *hdf5.PropertyList
	kind     sys.ClassKind
	result   string
	kinds    []sys.ClassKind
	names    []string
	query    textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectClass modelState = iota
	stateBrowse
)

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "property name"
	ti.Prompt = "has? "
	ti.Width = 40
	return &interactiveModel{
		kinds: sys.ClassKinds(),
		query: ti,
		state: stateSelectClass,
	}
}

type loadedMsg struct {
	err   error
	plist *hdf5.PropertyList
	kind  sys.ClassKind
	names []string
}

type resultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func loadList(kind sys.ClassKind) tea.Cmd {
	return func() tea.Msg {
		p, err := hdf5.NewPropertyList(kind)
		if err != nil {
			return loadedMsg{err: err, kind: kind}
		}
		return loadedMsg{plist: p, kind: kind, names: p.Properties()}
	}
}

func queryProperty(p *hdf5.PropertyList, name string) tea.Cmd {
	return func() tea.Msg {
		if p.Has(name) {
			return resultMsg{result: fmt.Sprintf("%q is present", name)}
		}
		return resultMsg{result: fmt.Sprintf("%q is not present", name)}
	}
}

func cloneList(p *hdf5.PropertyList) tea.Cmd {
	return func() tea.Msg {
		c, err := p.TryClone()
		if err != nil {
			return resultMsg{err: err}
		}
		defer c.Close()
		return resultMsg{result: fmt.Sprintf("clone %s, equal to original: %t", c, p.Equal(c))}
	}
}

func (m *interactiveModel) closeList() {
	if m.plist != nil {
		_ = m.plist.Close()
		m.plist = nil
	}
	m.names = nil
	m.result = ""
	m.err = nil
	m.query.Reset()
	m.query.Blur()
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.closeList()
			return m, tea.Quit

		case "q":
			if m.state == stateSelectClass {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectClass && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectClass && m.selected < len(m.kinds)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectClass:
				return m, loadList(m.kinds[m.selected])
			case stateBrowse:
				if name := strings.TrimSpace(m.query.Value()); name != "" {
					return m, queryProperty(m.plist, name)
				}
			}

		case "tab":
			if m.state == stateBrowse {
				return m, cloneList(m.plist)
			}

		case "esc":
			if m.state == stateBrowse {
				m.closeList()
				m.state = stateSelectClass
				return m, nil
			}
		}

	case loadedMsg:
		// A repeated enter can deliver a second list before the first is seen.
		m.closeList()
		m.err = msg.err
		if msg.err != nil {
			m.state = stateSelectClass
			return m, nil
		}
		m.plist = msg.plist
		m.kind = msg.kind
		m.names = msg.names
		m.state = stateBrowse
		m.query.Focus()
		return m, textinput.Blink

	case resultMsg:
		m.result = msg.result
		m.err = msg.err
	}

	if m.state == stateBrowse {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(render(titleStyle, "HDF5 Property Lists"))
	b.WriteString(" ")
	b.WriteString(hdf5.Backend().Name())
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectClass:
		if m.err != nil {
			b.WriteString(render(errorStyle, fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString("Select a class:\n\n")
		for i, kind := range m.kinds {
			line := displayName(kind.String())
			if i == m.selected {
				b.WriteString(render(selectedStyle, "> "+line))
			} else {
				b.WriteString("  " + render(classStyle, line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(render(helpStyle, "↑/↓ select • enter create list • q quit"))

	case stateBrowse:
		fmt.Fprintf(&b, "%s %s\n\n", render(classStyle, displayName(m.kind.String())), m.plist)
		shown := m.names
		if len(shown) > maxShown {
			shown = shown[:maxShown]
		}
		for _, name := range shown {
			b.WriteString("  " + render(nameStyle, name) + "\n")
		}
		if rest := len(m.names) - len(shown); rest > 0 {
			fmt.Fprintf(&b, "  … and %d more\n", rest)
		}
		fmt.Fprintf(&b, "\n%d properties\n\n", len(m.names))
		b.WriteString(m.query.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(render(errorStyle, fmt.Sprintf("Error: %v", m.err)))
		} else if m.result != "" {
			b.WriteString(render(resultStyle, m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(render(helpStyle, "enter query • tab clone • esc back • ctrl+c quit"))
	}

	return b.String()
}

func runInteractive() error {
	m := newInteractiveModel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.closeList()
	return err
}
