// ABOUTME: Bubble Tea model driving a codeview.Document from keypresses
// ABOUTME: Renders the element stream with lipgloss: tokens, inlays, widgets;
// ABOUTME: fully folded lines are skipped, carets and selections are not drawn

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/codeview-go/pkg/codeview"
	"github.com/mauromedda/codeview-go/pkg/codeview/tokenizer"
	"github.com/mauromedda/codeview-go/pkg/codeview/view"
	"github.com/mauromedda/codeview-go/pkg/tui/width"
)

var (
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// tickInterval paces fold-animation ticks independent of the host's repaint
// rate, fast enough that the decay curve reads as smooth motion.
const tickInterval = 16 * time.Millisecond

// tickMsg drives the fold-animation loop: as long as UpdateFoldAnimations
// reports work outstanding, the model reschedules another tick.
type tickMsg struct{}

type model struct {
	doc      *codeview.Document
	filename string
	width    int
	height   int
}

func newModel(src, filename string) model {
	settings := view.Settings{TabWidth: 4}
	tok := tokenizer.NewChroma(filename)
	doc := codeview.New(src, settings, tok, 1.0)
	return model{doc: doc, filename: filename}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.doc.SetMaxColumn(view.MaxColumn{Value: uint32(msg.Width), Set: msg.Width > 0})
		return m, nil
	case tickMsg:
		if m.doc.UpdateFoldAnimations() {
			return m, tickCmd()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	extend := strings.HasPrefix(msg.String(), "shift+")
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "shift+left":
		m.doc.MoveCursorsLeft(extend)
	case "right", "shift+right":
		m.doc.MoveCursorsRight(extend)
	case "up", "shift+up":
		m.doc.MoveCursorsUp(extend)
	case "down", "shift+down":
		m.doc.MoveCursorsDown(extend)
	case "enter":
		m.doc.Enter()
	case "backspace":
		m.doc.Backspace()
	case "delete":
		m.doc.Delete()
	case "ctrl+f":
		v := m.doc.AsView()
		latest, _ := v.Sels().Latest()
		m.doc.FoldLine(int(latest.Cursor.BiasedPos.Pos.Line), 0)
		return m, tickCmd()
	case "ctrl+u":
		v := m.doc.AsView()
		latest, _ := v.Sels().Latest()
		m.doc.UnfoldLine(int(latest.Cursor.BiasedPos.Pos.Line))
		return m, tickCmd()
	default:
		if len(msg.Runes) > 0 {
			m.doc.Replace(string(msg.Runes))
		}
	}
	return m, nil
}

func (m model) View() string {
	v := m.doc.AsView()
	var b strings.Builder

	for _, el := range v.Elements(0, v.LineCount()) {
		switch el.Kind {
		case view.ElementLineInlay:
			b.WriteString(commentStyle.Render(el.LineInlay.Text))
			b.WriteByte('\n')
		case view.ElementBlockWidget:
			b.WriteString(fmt.Sprintf("[widget %s]\n", el.BlockWidget.ID))
		case view.ElementLine:
			if el.Line.Hidden {
				continue
			}
			for _, row := range el.Line.Rows {
				renderRow(&b, row)
				b.WriteByte('\n')
			}
		}
	}

	status := statusStyle.Render(fmt.Sprintf("%s — %d lines — ctrl+f fold, ctrl+u unfold, esc quit", m.filename, v.LineCount()))
	if m.width > 0 {
		status = width.TruncateToWidth(status, m.width)
	}
	return b.String() + "\n" + status
}

func renderRow(b *strings.Builder, row []view.InlineElement) {
	for _, el := range row {
		switch el.Kind {
		case view.InlineWidget:
			b.WriteString(fmt.Sprintf("[%s]", el.Widget.ID))
		case view.InlineInlayText:
			b.WriteString(commentStyle.Render(el.Text))
		default:
			b.WriteString(el.Text)
		}
	}
}
