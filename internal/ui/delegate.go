package ui

import (
	"fmt"
	"io"

	"github.com/babarot/brm/internal/ui/keys"
	"github.com/babarot/brm/internal/ui/styles"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// listDelegate renders picker items, one title line and one description line
type listDelegate struct {
	styles     delegateStyles
	isSelected func(*Item) bool
}

type delegateStyles struct {
	NormalTitle         lipgloss.Style
	NormalDesc          lipgloss.Style
	SelectedTitle       lipgloss.Style
	SelectedDesc        lipgloss.Style
	DimmedTitle         lipgloss.Style
	DimmedDesc          lipgloss.Style
	CursorTitle         lipgloss.Style
	CursorDesc          lipgloss.Style
	SelectedCursorTitle lipgloss.Style
	SelectedCursorDesc  lipgloss.Style
	FilterMatch         lipgloss.Style
}

func newListDelegate(isSelected func(*Item) bool) *listDelegate {
	cursor := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(styles.Cursor).
		Padding(0, 0, 0, 1)
	normal := lipgloss.NewStyle().Padding(0, 0, 0, 2)

	return &listDelegate{
		isSelected: isSelected,
		styles: delegateStyles{
			NormalTitle:         normal,
			NormalDesc:          normal.Foreground(styles.Dimmed),
			SelectedTitle:       normal.Foreground(styles.Selected),
			SelectedDesc:        normal.Foreground(styles.Selected),
			DimmedTitle:         normal.Foreground(styles.Dimmed),
			DimmedDesc:          normal.Foreground(lipgloss.AdaptiveColor{Light: "#C2B8C2", Dark: "#4D4D4D"}),
			CursorTitle:         cursor.Foreground(styles.Cursor),
			CursorDesc:          cursor.Foreground(styles.Cursor),
			SelectedCursorTitle: cursor.Foreground(styles.Selected),
			SelectedCursorDesc:  cursor.Foreground(styles.Selected),
			FilterMatch:         lipgloss.NewStyle().Underline(true),
		},
	}
}

func (d *listDelegate) Height() int  { return 2 }
func (d *listDelegate) Spacing() int { return 1 }

func (d *listDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d *listDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(*Item)
	if !ok || m.Width() <= 0 {
		return
	}

	s := d.styles
	textWidth := m.Width() - s.NormalTitle.GetPaddingLeft() - s.NormalTitle.GetPaddingRight()
	title := ansi.Truncate(item.Title(), textWidth, ellipsis)
	desc := ansi.Truncate(item.Description(), textWidth, ellipsis)

	var (
		selected    = d.isSelected != nil && d.isSelected(item)
		onCursor    = index == m.Index()
		emptyFilter = m.FilterState() == list.Filtering && m.FilterValue() == ""
		isFiltered  = m.FilterState() == list.Filtering || m.FilterState() == list.FilterApplied
	)

	switch {
	case emptyFilter:
		title = s.DimmedTitle.Render(title)
		desc = s.DimmedDesc.Render(desc)
	case onCursor && selected:
		title = s.SelectedCursorTitle.Render(title)
		desc = s.SelectedCursorDesc.Render(desc)
	case onCursor:
		title = s.CursorTitle.Render(title)
		desc = s.CursorDesc.Render(desc)
	case selected:
		title = s.SelectedTitle.Render(title)
		desc = s.SelectedDesc.Render(desc)
	default:
		if isFiltered {
			unmatched := s.NormalTitle.Inline(true)
			matched := unmatched.Inherit(s.FilterMatch)
			title = lipgloss.StyleRunes(title, m.MatchesForItem(index), matched, unmatched)
		}
		title = s.NormalTitle.Render(title)
		desc = s.NormalDesc.Render(desc)
	}

	fmt.Fprintf(w, "%s\n%s", title, desc)
}

func (d *listDelegate) ShortHelp() []key.Binding {
	return keys.Picker.ShortHelp()
}

func (d *listDelegate) FullHelp() [][]key.Binding {
	return keys.Picker.FullHelp()
}
