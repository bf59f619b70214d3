package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

type field int

const (
	fieldPlaintext field = iota
	fieldKey
)

type model struct {
	theme Theme
	deps  Deps

	inputs [2]textinput.Model
	focus  field

	running bool
	result  *domain.RoundResult
	toast   string

	width int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if strings.TrimSpace(deps.Config.Session.ExitToken) == "" {
		deps.Config.Session.ExitToken = domain.DefaultExitToken
	}

	pt := textinput.New()
	pt.Prompt = "Plain Text: "
	pt.Placeholder = "letters, spaces, punctuation (no digits)"
	pt.Focus()

	key := textinput.New()
	key.Prompt = "Key:        "
	key.Placeholder = "digits 1..9, e.g. 312"
	key.CharLimit = 9

	return model{
		theme:  DefaultTheme(),
		deps:   deps,
		inputs: [2]textinput.Model{pt, key},
		focus:  fieldPlaintext,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-20, 10)
		}
		return m, nil

	case roundDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.result = nil
			return m, m.setFocus(fieldKey)
		}
		res := msg.res
		m.result = &res
		m.toast = ""
		m.inputs[fieldKey].SetValue("")
		return m, m.setFocus(fieldPlaintext)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			return m, m.setFocus(1 - m.focus)

		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit handles enter on the focused field: the plaintext is checked before
// moving on to the key, and enter on the key runs the round.
func (m model) submit() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}

	value := m.inputs[m.focus].Value()
	if m.focus == fieldKey {
		value = strings.TrimSpace(value)
	}
	if strings.EqualFold(value, m.deps.Config.Session.ExitToken) {
		return m, tea.Quit
	}

	pt := m.inputs[fieldPlaintext].Value()
	if m.deps.Rounds != nil {
		if err := m.deps.Rounds.Validator().Plaintext(pt); err != nil {
			m.toast = userMessage(err)
			return m, m.setFocus(fieldPlaintext)
		}
	}

	if m.focus == fieldPlaintext {
		m.toast = ""
		return m, m.setFocus(fieldKey)
	}

	m.running = true
	m.toast = ""
	return m, cmdRunRound(m.deps, pt, value)
}

func (m *model) setFocus(f field) tea.Cmd {
	m.focus = f
	for i := range m.inputs {
		if field(i) == f {
			continue
		}
		m.inputs[i].Blur()
	}
	return m.inputs[f].Focus()
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	banner := m.deps.Config.Session.Banner
	if banner == "" {
		banner = "Table Cipher"
	}
	header := m.theme.Title.Render(banner) + "\n" +
		m.theme.Subtitle.Render("Columnar transposition: write rows, read columns in key order") + "\n"

	form := m.inputs[fieldPlaintext].View() + "\n" + m.inputs[fieldKey].View()

	var status string
	switch {
	case m.running:
		status = m.theme.Help.Render("working…")
	case m.toast != "":
		status = m.theme.Error.Render("✗ " + m.toast)
	}

	body := header + "\n" + m.theme.Card.Render(form) + "\n"
	if status != "" {
		body += status + "\n"
	}
	if m.result != nil {
		body += "\n" + m.theme.Card.Render(renderResult(m.theme, *m.result, m.deps.Config.Session.ShowTables, m.width)) + "\n"
	}

	help := m.theme.Help.Render(fmt.Sprintf("enter next/run • tab switch field • %s or esc quit", m.deps.Config.Session.ExitToken))
	return wrap.Render(body + "\n" + help)
}
