package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles the reader renders with.
type Styles struct {
	Header      lipgloss.Style
	Reference   lipgloss.Style
	VerseLabel  lipgloss.Style
	Text        lipgloss.Style
	WordMark    lipgloss.Style
	VerseMark   lipgloss.Style
	Message     lipgloss.Style
	MenuItem    lipgloss.Style
	MenuActive  lipgloss.Style
	MenuOff     lipgloss.Style
	Toast       lipgloss.Style
	Modal       lipgloss.Style
	ModalTitle  lipgloss.Style
	ModalItem   lipgloss.Style
	ModalCursor lipgloss.Style
	Help        lipgloss.Style
}

// Styles derives the reader's styles from the palette.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Reference:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		VerseLabel: lipgloss.NewStyle().Bold(true).Foreground(t.BorderActive),
		Text:       lipgloss.NewStyle().Foreground(t.Primary),
		WordMark:   lipgloss.NewStyle().Foreground(t.Background).Background(t.WordMark),
		VerseMark:  lipgloss.NewStyle().Background(t.VerseMark),
		Message:    lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		MenuItem:   lipgloss.NewStyle().Padding(0, 1).Foreground(t.Secondary),
		MenuActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(t.Background).Background(t.BorderActive),
		MenuOff:    lipgloss.NewStyle().Padding(0, 1).Foreground(t.Muted).Faint(true),
		Toast: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(t.Background).
			Background(t.Success),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderActive).
			Padding(0, 1),
		ModalTitle:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		ModalItem:   lipgloss.NewStyle().Foreground(t.Primary),
		ModalCursor: lipgloss.NewStyle().Bold(true).Foreground(t.Background).Background(t.Accent),
		Help:        lipgloss.NewStyle().Foreground(t.Muted),
	}
}
