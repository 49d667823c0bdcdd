package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	OldTestament key.Binding
	NewTestament key.Binding
	Chapter      key.Binding
	Verse        key.Binding
	NextChapter  key.Binding
	PrevChapter  key.Binding
	Draw         key.Binding
	ClearDrawing key.Binding
	ClearMarks   key.Binding
	PenColor     key.Binding
	PenColorBack key.Binding
	PenWider     key.Binding
	PenThinner   key.Binding
	Help         key.Binding
	Back         key.Binding
	Quit         key.Binding

	// picker navigation
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Choose key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		OldTestament: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "old testament")),
		NewTestament: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new testament")),
		Chapter:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chapter")),
		Verse:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "verse")),
		NextChapter:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next chapter")),
		PrevChapter:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev chapter")),
		Draw:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "draw")),
		ClearDrawing: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear drawing")),
		ClearMarks:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "clear highlights")),
		PenColor:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next colour")),
		PenColorBack: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev colour")),
		PenWider:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "wider pen")),
		PenThinner:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "thinner pen")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Choose: key.NewBinding(key.WithKeys("enter", " ")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OldTestament, k.NewTestament, k.Chapter, k.Verse, k.Draw, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OldTestament, k.NewTestament, k.Chapter, k.Verse},
		{k.NextChapter, k.PrevChapter, k.ClearMarks},
		{k.Draw, k.ClearDrawing, k.PenColor, k.PenColorBack, k.PenWider, k.PenThinner},
		{k.Help, k.Back, k.Quit},
	}
}
