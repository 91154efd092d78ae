// Package confirm is a single-line yes/no prompt for bubbletea.
package confirm

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jimschubert/answer/colors"
)

// Decision is an enumeration of decisions available in the confirmation bubble
type Decision int

const (
	// Undecided indicates the user has not answered yet
	Undecided Decision = iota

	// Accepted indicates a positive answer
	Accepted

	// Denied indicates a negative answer
	Denied
)

// String satisfies the fmt.Stringer interface
func (d Decision) String() string {
	return [...]string{
		"undecided",
		"accepted",
		"denied",
	}[d]
}

// IsAccepted is a helper to indicate the positive confirmation state was selected
func (d Decision) IsAccepted() bool {
	return d == Accepted
}

// Styles holds relevant styles used for rendering
type Styles struct {
	PromptPrefix lipgloss.Style
	Prompt       lipgloss.Style
	Text         lipgloss.Style
	Placeholder  lipgloss.Style
	Valid        lipgloss.Style
	Invalid      lipgloss.Style
}

// Model represents the bubble tea model for the confirm bubble.
//
// In the default mode a single key press answers: the first letter of
// AcceptedText accepts, the first letter of DeniedText denies. In Strict
// mode the user has to type AcceptedText exactly and press enter.
type Model struct {
	// PromptPrefix is shown before the prompt, separately styled
	PromptPrefix string

	// Prompt is the question
	Prompt string

	AcceptedText string
	DeniedText   string

	// Strict requires AcceptedText to be typed in full
	Strict bool

	Styles Styles

	selected Decision
	done     bool
	text     textinput.Model
}

// New creates a model that denies unless the user answers yes
func New(prompt string) Model {
	return Model{
		PromptPrefix: "? ",
		Prompt:       prompt,
		AcceptedText: "y",
		DeniedText:   "n",
		Styles: Styles{
			PromptPrefix: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix)),
			Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Placeholder)),
			Valid:        lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
			Invalid:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		},
	}
}

// NewStrict creates a model that only accepts a typed "YES"
func NewStrict(prompt string) Model {
	m := New(prompt)
	m.Strict = true
	m.AcceptedText = "YES"
	m.DeniedText = "no"
	return m
}

// Selected retrieves the user-selected Decision value
func (m *Model) Selected() Decision {
	return m.selected
}

// Done reports whether the user answered
func (m *Model) Done() bool {
	return m.done
}

// Value returns the Decision as the text the user chose
func (m *Model) Value() string {
	switch m.selected {
	case Accepted:
		return m.AcceptedText
	case Denied:
		return m.DeniedText
	}
	return ""
}

func (m *Model) decide(d Decision) (tea.Model, tea.Cmd) {
	m.selected = d
	m.done = true
	return m, tea.Quit
}

// Init satisfies the tea.Model interface
func (m *Model) Init() tea.Cmd {
	m.selected = Undecided

	input := textinput.New()
	if m.Strict {
		input.Placeholder = m.AcceptedText
	} else {
		input.Placeholder = m.AcceptedText + "/" + strings.ToUpper(m.DeniedText)
	}
	input.Prompt = strings.TrimSuffix(m.Prompt, " ") + " "
	input.PromptStyle = m.Styles.Prompt
	input.PlaceholderStyle = m.Styles.Placeholder
	input.TextStyle = m.Styles.Text
	input.CharLimit = max(len(m.AcceptedText), len(m.DeniedText))
	input.Focus()
	m.text = input
	return nil
}

// Update satisfies the tea.Model interface
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	msg, ok := teaMsg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.decide(Denied)
	}

	if m.Strict {
		return m.updateStrict(msg)
	}

	if msg.Type == tea.KeyEnter {
		// the default answer is no
		return m.decide(Denied)
	}
	if s := msg.String(); isLetter(s) {
		switch strings.ToLower(s) {
		case strings.ToLower(m.AcceptedText[:1]):
			return m.decide(Accepted)
		case strings.ToLower(m.DeniedText[:1]):
			return m.decide(Denied)
		}
	}
	return m, nil
}

func (m *Model) updateStrict(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Type {
	case tea.KeyEnter:
		if m.text.Value() == m.AcceptedText {
			return m.decide(Accepted)
		}
		return m.decide(Denied)
	case tea.KeyBackspace:
		m.text, cmd = m.text.Update(msg)
	default:
		// only the next character of AcceptedText is taken
		value := m.text.Value()
		if len(value) < len(m.AcceptedText) && msg.String() == m.AcceptedText[len(value):len(value)+1] {
			m.text, cmd = m.text.Update(msg)
		}
	}
	return m, cmd
}

// View satisfies the tea.Model interface
func (m *Model) View() string {
	var b strings.Builder
	if m.PromptPrefix != "" {
		b.WriteString(m.Styles.PromptPrefix.Inline(true).Render(m.PromptPrefix))
	}

	if m.done {
		promptRender := m.Styles.Prompt.Inline(true).Render
		b.WriteString(promptRender(m.Prompt))
		b.WriteString(promptRender(" "))
		b.WriteString(m.Value())
		b.WriteRune('\n')
		return b.String()
	}

	b.WriteString(m.text.View())
	if m.Strict {
		b.WriteString(" ")
		if m.text.Value() == m.AcceptedText {
			b.WriteString(m.Styles.Valid.Render("✓"))
		} else {
			b.WriteString(m.Styles.Invalid.Render("✗"))
		}
	}
	return b.String()
}

func isLetter(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
