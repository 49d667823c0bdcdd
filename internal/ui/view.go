package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"verse-canvas/internal/corpus"
	"verse-canvas/internal/selection"
)

type menuAction int

const (
	menuOldTestament menuAction = iota
	menuNewTestament
	menuChapter
	menuVerse
	menuDraw
)

type menuItem struct {
	label   string
	action  menuAction
	enabled bool
	active  bool
}

func (m Model) menuItems() []menuItem {
	aff := selection.Afford(m.state)
	draw := "Draw"
	if m.overlay.Active() {
		draw = "Drawing"
	}
	return []menuItem{
		{label: "Old Testament", action: menuOldTestament, enabled: true},
		{label: "New Testament", action: menuNewTestament, enabled: true},
		{label: aff.ChapterLabel, action: menuChapter, enabled: aff.ChapterEnabled},
		{label: aff.VerseLabel, action: menuVerse, enabled: aff.VerseEnabled},
		{label: draw, action: menuDraw, enabled: true, active: m.overlay.Active()},
	}
}

func (m Model) renderMenuItem(it menuItem) string {
	switch {
	case !it.enabled:
		return m.styles.MenuOff.Render(it.label)
	case it.active:
		return m.styles.MenuActive.Render(it.label)
	default:
		return m.styles.MenuItem.Render(it.label)
	}
}

// clickMenu runs the menu item under column x. Disabled items ignore
// clicks.
func (m *Model) clickMenu(x int) tea.Cmd {
	col := 0
	for _, it := range m.menuItems() {
		w := lipgloss.Width(m.renderMenuItem(it))
		if x >= col && x < col+w {
			if !it.enabled {
				return nil
			}
			return m.runMenu(it.action)
		}
		col += w
	}
	return nil
}

func (m *Model) runMenu(a menuAction) tea.Cmd {
	switch a {
	case menuOldTestament:
		return m.openPicker(bookPicker(m.index, corpus.OldTestament))
	case menuNewTestament:
		return m.openPicker(bookPicker(m.index, corpus.NewTestament))
	case menuChapter:
		return m.dispatch(selection.OpenChapters{})
	case menuVerse:
		return m.dispatch(selection.OpenVerses{})
	case menuDraw:
		return m.toggleDrawing()
	}
	return nil
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	aff := selection.Afford(m.state)
	title := ansi.Truncate(aff.Reference, max(1, m.width), "…")
	header := m.styles.Header.Width(m.width).Render(m.styles.Reference.Render(title))

	screen := strings.Split(header, "\n")
	body := strings.Split(m.viewport.View(), "\n")
	screen = append(screen, m.overlay.Render(body, m.viewport.YOffset)...)

	var menu strings.Builder
	for _, it := range m.menuItems() {
		menu.WriteString(m.renderMenuItem(it))
	}
	screen = append(screen, ansi.Truncate(menu.String(), m.width, ""))

	var status string
	switch {
	case m.toast != "" && m.toastErr:
		status = m.styles.Toast.Background(m.theme.Error).Render(m.toast)
	case m.toast != "":
		status = m.styles.Toast.Render(m.toast)
	default:
		status = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	screen = append(screen, status)

	switch {
	case m.picker != nil:
		overlayAt(screen, strings.Split(m.picker.render(m.styles), "\n"), m.width, m.picker.x, m.picker.y)
	case m.showHelp:
		box := m.styles.Modal.Render(
			m.styles.ModalTitle.Render("Keys") + "\n" + m.help.FullHelpView(m.keys.FullHelp()))
		lines := strings.Split(box, "\n")
		w := lipgloss.Width(box)
		overlayAt(screen, lines, m.width, max(0, (m.width-w)/2), max(0, (m.height-len(lines))/2))
	}

	return strings.Join(screen, "\n")
}
