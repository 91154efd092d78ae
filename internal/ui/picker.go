package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/babarot/brm/internal/ui/keys"
	"github.com/babarot/brm/internal/ui/styles"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrNothingToPick is returned when Pick is called without choices
var ErrNothingToPick = errors.New("nothing to choose from")

// Choice is one pickable value
type Choice struct {
	Value       string
	Description string
}

// Item is a Choice as shown in the list
type Item struct {
	choice Choice
	index  int
}

func (i *Item) Title() string       { return i.choice.Value }
func (i *Item) Description() string { return i.choice.Description }
func (i *Item) FilterValue() string { return i.choice.Value }

// Model is a multi-select list. Enter returns the selected items, or the
// item under the cursor when nothing is selected.
type Model struct {
	list     list.Model
	selected map[int]bool
	choices  []Choice
	picked   []string
	quitting bool
}

// NewModel builds a picker over choices
func NewModel(title string, choices []Choice) *Model {
	m := &Model{
		selected: make(map[int]bool),
		choices:  choices,
	}

	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = &Item{choice: c, index: i}
	}

	l := list.New(items, newListDelegate(m.isSelected), 0, 0)
	l.Title = title
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = keys.Picker.ShortHelp
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return keys.Picker.FullHelp()[0]
	}
	l.KeyMap.Quit.SetEnabled(false)
	m.list = l
	return m
}

func (m *Model) isSelected(item *Item) bool {
	return m.selected[item.index]
}

// Picked returns the chosen values in list order, nil when cancelled
func (m *Model) Picked() []string {
	return m.picked
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := lipgloss.NewStyle().Margin(1, 2).GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// keys go to the filter input while typing
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.Picker.Cancel):
			m.quitting = true
			m.picked = nil
			return m, tea.Quit
		case key.Matches(msg, keys.Picker.Choose):
			m.picked = m.collect()
			return m, tea.Quit
		case key.Matches(msg, keys.Picker.Mark):
			if item, ok := m.list.SelectedItem().(*Item); ok {
				m.selected[item.index] = !m.selected[item.index]
			}
			m.list.CursorDown()
			return m, nil
		case key.Matches(msg, keys.Picker.Unmark):
			if item, ok := m.list.SelectedItem().(*Item); ok {
				delete(m.selected, item.index)
			}
			m.list.CursorUp()
			return m, nil
		case key.Matches(msg, keys.Picker.MarkAll):
			m.toggleAll()
			return m, nil
		case key.Matches(msg, keys.Picker.Clear):
			if m.list.FilterState() == list.Unfiltered {
				clear(m.selected)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) toggleAll() {
	if len(m.selected) == len(m.choices) {
		clear(m.selected)
		return
	}
	for i := range m.choices {
		m.selected[i] = true
	}
}

func (m *Model) collect() []string {
	var picked []string
	for i, c := range m.choices {
		if m.selected[i] {
			picked = append(picked, c.Value)
		}
	}
	if len(picked) == 0 {
		if item, ok := m.list.SelectedItem().(*Item); ok {
			picked = append(picked, item.choice.Value)
		}
	}
	return picked
}

func (m *Model) View() string {
	if m.quitting || m.picked != nil {
		return ""
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(m.list.View())
}

// Pick lets the user choose any number of choices. It returns nil without
// an error when the user quits.
func Pick(title string, choices []Choice) ([]string, error) {
	if len(choices) == 0 {
		return nil, ErrNothingToPick
	}
	if !isTerminal() {
		return nil, errors.New("cannot pick files: stdin is not a terminal")
	}

	m := NewModel(title, choices)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr)).Run(); err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}
	return m.Picked(), nil
}
