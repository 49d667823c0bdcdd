// Package ui is the terminal reader: a bubbletea model that ties the
// selection flow, the verse panel, highlights and the drawing overlay
// together.
package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"verse-canvas/internal/annotate"
	"verse-canvas/internal/corpus"
	"verse-canvas/internal/highlight"
	"verse-canvas/internal/logging"
	"verse-canvas/internal/selection"
	"verse-canvas/internal/settings"
	"verse-canvas/internal/theme"
)

// screen rows around the verse panel
const (
	headerHeight = 2
	footerHeight = 2
)

const (
	toastCopied       = "Copied to clipboard"
	toastCopyFailed   = "Copy failed"
	toastDrawCleared  = "Drawing cleared"
	toastMarksCleared = "Highlights cleared"
	toastDrawOn       = "Drawing Mode Active"
	toastDrawOff      = "Drawing Mode Off"
)

// Copier puts text on the clipboard.
type Copier interface {
	Copy(text string) error
}

type Options struct {
	Index    *corpus.Index
	Theme    theme.Theme
	Settings *settings.Settings
	Copier   Copier
	Logger   *slog.Logger
	// Now is the clock for double-click detection.
	Now func() time.Time
}

type Model struct {
	index  *corpus.Index
	theme  theme.Theme
	styles theme.Styles
	keys   keyMap
	help   help.Model
	timing settings.Timing
	copier Copier
	log    *slog.Logger
	now    func() time.Time

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	state   selection.State
	passage selection.Passage
	layout  layout

	marks   *highlight.Marks
	press   *highlight.Press
	dbl     *highlight.DoubleClick
	pressed bool

	overlay   *annotate.Overlay
	pen       int
	resizeGen int

	picker   *picker
	showHelp bool

	toast    string
	toastErr bool
	toastID  int
}

type longPressMsg struct{ session uint64 }
type resizeMsg struct{ gen int }
type toastExpiredMsg struct{ id int }
type copiedMsg struct{ err error }

func New(opts Options) Model {
	s := opts.Settings
	if s == nil {
		s = settings.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.WithComponent("ui")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	index := opts.Index
	if index == nil {
		index = corpus.NewIndex(nil)
	}

	tool := annotate.Tool{Width: s.Pen.Width}
	pen := -1
	if c, err := annotate.ParseColor(s.Pen.Color); err == nil {
		tool.Color = c
		for i, p := range opts.Theme.Pens {
			if pc, err := annotate.ParseColor(p); err == nil && pc == c {
				pen = i
				break
			}
		}
	} else if len(opts.Theme.Pens) > 0 {
		tool.Color, _ = annotate.ParseColor(opts.Theme.Pens[0])
		pen = 0
	}

	styles := opts.Theme.Styles()
	h := help.New()
	h.Styles.ShortKey = styles.Help.Bold(true)
	h.Styles.ShortDesc = styles.Help
	h.Styles.FullKey = styles.Help.Bold(true)
	h.Styles.FullDesc = styles.Help

	return Model{
		index:   index,
		theme:   opts.Theme,
		styles:  styles,
		keys:    defaultKeys(),
		help:    h,
		timing:  s.Timing,
		copier:  opts.Copier,
		log:     log,
		now:     now,
		marks:   highlight.NewMarks(),
		press:   &highlight.Press{},
		dbl:     &highlight.DoubleClick{Window: s.Timing.DoubleClick()},
		overlay: annotate.New(tool),
		pen:     pen,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("verse-canvas")
}

func (m Model) panelHeight() int { return max(1, m.height-headerHeight-footerHeight) }

func (m Model) menuRow() int { return m.height - footerHeight }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.panelHeight())
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.panelHeight()
		}
		m.help.Width = msg.Width
		m.relayout()
		m.overlay.Resize(m.width, m.panelHeight())
		if m.picker != nil {
			m.picker.layout(m.width, m.height)
		}
		return m, nil

	case resizeMsg:
		if msg.gen == m.resizeGen {
			m.overlay.Resize(m.width, m.panelHeight())
		}
		return m, nil

	case longPressMsg:
		ref, ok := m.press.Fire(msg.session)
		if !ok {
			return m, nil
		}
		cmd := m.copyVerse(ref)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("copy failed", slog.Any("error", msg.err))
			cmd := m.notifyError(toastCopyFailed)
			return m, cmd
		}
		cmd := m.notify(toastCopied)
		return m, cmd

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.picker != nil {
		return m.handlePickerKey(msg)
	}
	if m.showHelp && key.Matches(msg, m.keys.Help, m.keys.Back) {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.OldTestament):
		cmd := m.openPicker(bookPicker(m.index, corpus.OldTestament))
		return m, cmd
	case key.Matches(msg, m.keys.NewTestament):
		cmd := m.openPicker(bookPicker(m.index, corpus.NewTestament))
		return m, cmd
	case key.Matches(msg, m.keys.Chapter):
		cmd := m.dispatch(selection.OpenChapters{})
		return m, cmd
	case key.Matches(msg, m.keys.Verse):
		cmd := m.dispatch(selection.OpenVerses{})
		return m, cmd
	case key.Matches(msg, m.keys.NextChapter):
		cmd := m.stepChapter(1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevChapter):
		cmd := m.stepChapter(-1)
		return m, cmd
	case key.Matches(msg, m.keys.Draw):
		cmd := m.toggleDrawing()
		return m, cmd
	case key.Matches(msg, m.keys.ClearDrawing):
		m.overlay.Clear()
		cmd := m.notify(toastDrawCleared)
		return m, cmd
	case key.Matches(msg, m.keys.ClearMarks):
		m.marks.Clear()
		m.dbl.Reset()
		m.refresh()
		cmd := m.notify(toastMarksCleared)
		return m, cmd
	case key.Matches(msg, m.keys.PenColor):
		cmd := m.cyclePen(1)
		return m, cmd
	case key.Matches(msg, m.keys.PenColorBack):
		cmd := m.cyclePen(-1)
		return m, cmd
	case key.Matches(msg, m.keys.PenWider):
		cmd := m.adjustPen(1)
		return m, cmd
	case key.Matches(msg, m.keys.PenThinner):
		cmd := m.adjustPen(-1)
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.overlay.Active() {
			cmd := m.toggleDrawing()
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.picker
	switch {
	case key.Matches(msg, m.keys.Back):
		m.picker = nil
	case key.Matches(msg, m.keys.Up):
		p.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		p.move(0, 1)
	case key.Matches(msg, m.keys.Left):
		p.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		p.move(1, 0)
	case key.Matches(msg, m.keys.Choose):
		if ev, ok := p.selected(); ok {
			m.picker = nil
			cmd := m.dispatch(ev)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if m.picker != nil {
			if msg.Button == tea.MouseButtonWheelUp {
				m.picker.scroll(-1)
			} else {
				m.picker.scroll(1)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.picker != nil {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		i, ok := m.picker.hit(msg.X, msg.Y)
		if !ok {
			if !m.picker.contains(msg.X, msg.Y) {
				m.picker = nil
			}
			return m, nil
		}
		ev := m.picker.items[i].event
		m.picker = nil
		cmd := m.dispatch(ev)
		return m, cmd
	}

	if msg.Y == m.menuRow() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			cmd := m.clickMenu(msg.X)
			return m, cmd
		}
		return m, nil
	}

	p := annotate.Point{X: msg.X, Y: msg.Y - headerHeight}
	inPanel := p.Y >= 0 && p.Y < m.panelHeight()

	if m.overlay.Active() {
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && inPanel {
				m.overlay.Begin(p, m.viewport.YOffset)
			}
		case tea.MouseActionMotion:
			if m.overlay.Stroking() {
				p.Y = max(0, min(p.Y, m.panelHeight()-1))
				m.overlay.Extend(p, m.viewport.YOffset)
			}
		case tea.MouseActionRelease:
			m.overlay.End()
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inPanel {
			return m, nil
		}
		verse, _, ok := m.layout.hit(p.Y+m.viewport.YOffset, p.X)
		if !ok {
			m.pressed = false
			return m, nil
		}
		m.pressed = true
		session := m.press.Begin(m.layout.verses[verse].Reference)
		return m, tea.Tick(m.timing.LongPress(), func(time.Time) tea.Msg {
			return longPressMsg{session: session}
		})

	case tea.MouseActionMotion:
		m.press.Cancel()
		return m, nil

	case tea.MouseActionRelease:
		m.press.Cancel()
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		if !m.press.Click() || !inPanel {
			return m, nil
		}
		m.click(p)
		return m, nil
	}
	return m, nil
}

// click toggles the word under p and, on the second click on the same verse
// within the window, the verse itself.
func (m *Model) click(p annotate.Point) {
	verse, word, ok := m.layout.hit(p.Y+m.viewport.YOffset, p.X)
	if !ok {
		return
	}
	ref := m.layout.verses[verse].Reference
	if word >= 0 {
		m.marks.ToggleWord(highlight.Word{Reference: ref, Index: word})
	}
	if m.dbl.Click(ref, m.now()) {
		m.marks.ToggleVerse(ref)
	}
	m.refresh()
}

func (m *Model) dispatch(ev selection.Event) tea.Cmd {
	next, eff := selection.Apply(m.state, ev)
	m.log.Debug("selection", slog.String("event", fmt.Sprintf("%T", ev)),
		slog.String("book", next.Book), slog.Int("chapter", next.Chapter), slog.Int("verse", next.Verse))
	m.state = next

	switch eff.Kind {
	case selection.EffectOpenChapterPicker:
		return m.openPicker(chapterPicker(m.index, m.state.Book))
	case selection.EffectOpenVersePicker:
		return m.openPicker(versePicker(m.index, m.state))
	case selection.EffectDisplay:
		return m.display()
	case selection.EffectNotify:
		return m.notifyError(eff.Message)
	}
	return nil
}

func (m *Model) stepChapter(step int) tea.Cmd {
	ch, ok := selection.Adjacent(m.index, m.state, step)
	if !ok {
		return nil
	}
	return m.dispatch(selection.SelectChapter{Chapter: ch})
}

// openPicker shows p. Drawing and the modal never run together.
func (m *Model) openPicker(p *picker) tea.Cmd {
	m.showHelp = false
	p.layout(m.width, m.height)
	m.picker = p
	if m.overlay.Active() {
		m.overlay.SetActive(false)
		return m.notify(toastDrawOff)
	}
	return nil
}

// display re-renders the panel for the current selection. Highlights and
// strokes belong to the previous passage and are dropped; the surface is
// re-fitted once the new layout has settled.
func (m *Model) display() tea.Cmd {
	m.passage = selection.Resolve(m.index, m.state)
	m.marks.Clear()
	m.dbl.Reset()
	m.press.Cancel()
	m.pressed = false
	m.relayout()
	m.viewport.GotoTop()
	m.overlay.Clear()

	m.resizeGen++
	gen := m.resizeGen
	return tea.Tick(m.timing.ResizeDelay(), func(time.Time) tea.Msg {
		return resizeMsg{gen: gen}
	})
}

func (m *Model) relayout() {
	m.layout = buildLayout(m.passage.Verses, m.passage.Message, m.width)
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.layout.render(m.styles, m.marks))
}

func (m *Model) toggleDrawing() tea.Cmd {
	if m.overlay.Active() {
		m.overlay.SetActive(false)
		return m.notify(toastDrawOff)
	}
	m.picker = nil
	m.press.Cancel()
	m.pressed = false
	if cols, rows := m.overlay.Size(); cols != m.width || rows != m.panelHeight() {
		m.overlay.Resize(m.width, m.panelHeight())
	}
	m.overlay.SetActive(true)
	return m.notify(toastDrawOn)
}

func (m *Model) cyclePen(step int) tea.Cmd {
	pens := m.theme.Pens
	if len(pens) == 0 {
		return nil
	}
	m.pen = ((m.pen+step)%len(pens) + len(pens)) % len(pens)
	c, err := annotate.ParseColor(pens[m.pen])
	if err != nil {
		m.log.Warn("bad pen colour", slog.String("theme", m.theme.Name), slog.Any("error", err))
		return nil
	}
	m.overlay.SetColor(c)
	return m.notify("Pen " + annotate.Hex(c))
}

func (m *Model) adjustPen(delta float64) tea.Cmd {
	m.overlay.SetWidth(m.overlay.Tool().Width + delta)
	return m.notify(fmt.Sprintf("Pen width %g", m.overlay.Tool().Width))
}

func (m *Model) copyVerse(ref string) tea.Cmd {
	var text string
	found := false
	for _, rec := range m.layout.verses {
		if rec.Reference == ref {
			text, found = rec.CopyText(), true
			break
		}
	}
	if !found || m.copier == nil {
		return m.notifyError(toastCopyFailed)
	}
	copier := m.copier
	return func() tea.Msg {
		return copiedMsg{err: copier.Copy(text)}
	}
}

func (m *Model) notify(text string) tea.Cmd {
	m.toast = text
	m.toastErr = false
	return m.expireToast()
}

func (m *Model) notifyError(text string) tea.Cmd {
	m.toast = text
	m.toastErr = true
	return m.expireToast()
}

func (m *Model) expireToast() tea.Cmd {
	m.toastID++
	id := m.toastID
	return tea.Tick(m.timing.Toast(), func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
