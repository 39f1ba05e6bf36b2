package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"miniapp/internal/domain"
)

var (
	accentColor    = lipgloss.Color("#2481CC")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(26)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true)

	focusedButtonStyle = buttonStyle.
				Foreground(highlightColor).
				Bold(true)

	disabledButtonStyle = buttonStyle.
				Foreground(mutedColor).
				Strikethrough(true)

	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	helpKeyStyle  = lipgloss.NewStyle().Foreground(highlightColor)
	helpDescStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Press       key.Binding
	ToggleTheme key.Binding
	ToggleGeo   key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Next:        key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	Prev:        key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
	Press:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
	ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle theme")),
	ToggleGeo:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "toggle location access")),
	Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// Hooks are host-side actions reachable from the keyboard. Nil hooks are
// ignored.
type Hooks struct {
	ToggleTheme          func()
	ToggleLocationAccess func()
}

// changedMsg reports that the Screen was written to.
type changedMsg struct{}

// Model is the bubbletea model drawing a Screen.
type Model struct {
	screen *Screen
	hooks  Hooks

	order    []row
	focus    int
	inputs   map[domain.ElementID]textinput.Model
	width    int
	quitting bool
}

// NewModel returns a model focused on the first control.
func NewModel(screen *Screen, hooks Hooks) Model {
	m := Model{
		screen: screen,
		hooks:  hooks,
		order:  focusables(),
		inputs: map[domain.ElementID]textinput.Model{},
	}
	for _, r := range m.order {
		if r.kind != rowInput {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.ToLower(r.label)
		ti.CharLimit = 4096
		ti.Width = 40
		ti.SetValue(screen.Value(r.id))
		m.inputs[r.id] = ti
	}
	return m.focusOn(0)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.screen.Changed()
	return func() tea.Msg {
		<-ch
		return changedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case changedMsg:
		m.syncInputs()
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			return m.focusOn(m.focus + 1), nil
		case key.Matches(msg, keys.Prev):
			return m.focusOn(m.focus - 1), nil
		case key.Matches(msg, keys.ToggleTheme):
			if m.hooks.ToggleTheme != nil {
				m.hooks.ToggleTheme()
			}
			return m, nil
		case key.Matches(msg, keys.ToggleGeo):
			if m.hooks.ToggleLocationAccess != nil {
				m.hooks.ToggleLocationAccess()
			}
			return m, nil
		case key.Matches(msg, keys.Press):
			cur := m.order[m.focus]
			if cur.kind == rowButton {
				m.screen.Click(cur.id)
				return m, nil
			}
			return m.focusOn(m.focus + 1), nil
		}
	}

	cur := m.order[m.focus]
	if cur.kind != rowInput {
		return m, nil
	}
	ti, cmd := m.inputs[cur.id].Update(msg)
	m.inputs[cur.id] = ti
	if ti.Value() != m.screen.Value(cur.id) {
		m.screen.SetValue(cur.id, ti.Value())
	}
	return m, cmd
}

// syncInputs pulls values the client wrote into the text inputs.
func (m Model) syncInputs() {
	for id, ti := range m.inputs {
		if v := m.screen.Value(id); v != ti.Value() {
			ti.SetValue(v)
			m.inputs[id] = ti
		}
	}
}

func (m Model) focusOn(i int) Model {
	n := len(m.order)
	m.focus = ((i % n) + n) % n
	for id, ti := range m.inputs {
		if id == m.order[m.focus].id {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[id] = ti
	}
	return m
}

// Focused returns the element that has keyboard focus.
func (m Model) Focused() domain.ElementID { return m.order[m.focus].id }

func (m Model) View() string {
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Mini App Capability Demo") + "\n\n")

	for _, s := range layout {
		var body strings.Builder
		body.WriteString(titleStyle.Render(s.title) + "\n")
		for _, r := range s.rows {
			body.WriteString(m.renderRow(r) + "\n")
		}
		b.WriteString(sectionStyle.Render(strings.TrimSuffix(body.String(), "\n")) + "\n")
	}

	b.WriteString(m.help())

	page := lipgloss.NewStyle()
	if bg := m.screen.Style(domain.StyleBackgroundColor); bg != "" {
		page = page.Background(lipgloss.Color(bg))
	}
	if fg := m.screen.Style(domain.StyleColor); fg != "" {
		page = page.Foreground(lipgloss.Color(fg))
	}
	return page.Render(b.String())
}

func (m Model) renderRow(r row) string {
	focused := m.order[m.focus].id == r.id
	switch r.kind {
	case rowInput:
		return labelStyle.Render(r.label) + m.inputs[r.id].View()
	case rowButton:
		style := buttonStyle
		switch {
		case m.screen.Disabled(r.id):
			style = disabledButtonStyle
		case focused:
			style = focusedButtonStyle
		}
		return style.Render(r.label)
	default:
		v := m.screen.Text(r.id)
		if v == "" {
			v = mutedStyle.Render("-")
		}
		return labelStyle.Render(r.label) + v
	}
}

func (m Model) help() string {
	bindings := []key.Binding{keys.Next, keys.Prev, keys.Press, keys.ToggleTheme, keys.ToggleGeo, keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, mutedStyle.Render(" • "))
}

// Run draws screen until the user quits or ctx is done.
func Run(ctx context.Context, screen *Screen, hooks Hooks, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(NewModel(screen, hooks), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
