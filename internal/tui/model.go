// Package tui is the interactive terminal surface of romawi.
//
// The screen mirrors a two-pane translator: an input field, the output
// pane, labels showing which side holds numerals and which holds letters,
// a character counter and a copy action. Tab swaps the direction.
//
// The model runs inside the bubbletea event loop and is not safe for use
// from other goroutines.
package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/i18n"
	"github.com/valpere/romawi/internal/session"
	"github.com/valpere/romawi/internal/translator"
)

// copiedBadgeDuration is how long the "copied" badge stays visible.
const copiedBadgeDuration = 2 * time.Second

// Clipboard receives copied output.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard is the OS clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

type copyResultMsg struct {
	err error
}

// clearCopiedMsg hides the badge shown by copy number seq.
type clearCopiedMsg struct {
	seq int
}

type Model struct {
	session *session.Session
	msgs    *i18n.Localizer
	clip    Clipboard

	input textinput.Model
	width int

	// modal holds the notification text; empty when closed.
	modal  string
	copied bool
	// copySeq numbers successful copies; a tick only clears its own badge.
	copySeq int
}

// New builds the model around sess. A nil clip uses the system clipboard.
func New(sess *session.Session, msgs *i18n.Localizer, clip Clipboard) Model {
	if clip == nil {
		clip = SystemClipboard()
	}

	ti := textinput.New()
	ti.Placeholder = msgs.T("InputPlaceholder", nil)
	ti.Prompt = "› "
	// Swap seeds the input with the previous output, which can be several
	// times longer than what was typed.
	ti.CharLimit = 0
	ti.Width = 60
	ti.SetValue(sess.Input())
	ti.Focus()

	return Model{
		session: sess,
		msgs:    msgs,
		clip:    clip,
		input:   ti,
	}
}

// Run starts the interactive program and blocks until the user quits.
func Run(sess *session.Session, msgs *i18n.Localizer) error {
	p := tea.NewProgram(New(sess, msgs, nil), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.modal = m.msgs.T("CopyFailed", map[string]any{"Error": msg.err.Error()})
			return m, nil
		}
		m.copied = true
		m.copySeq++
		seq := m.copySeq
		return m, tea.Tick(copiedBadgeDuration, func(time.Time) tea.Msg { return clearCopiedMsg{seq: seq} })

	case clearCopiedMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if m.modal != "" {
			switch msg.Type {
			case tea.KeyEsc, tea.KeyEnter:
				m.modal = ""
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyTab, tea.KeyCtrlS:
			m.session.Swap()
			m.input.SetValue(m.session.Input())
			m.input.CursorEnd()
			m.copied = false
			return m, nil

		case tea.KeyCtrlY:
			text, ok := m.session.CopyText()
			if !ok {
				m.modal = m.msgs.T("CopyEmpty", nil)
				return m, nil
			}
			clip := m.clip
			return m, func() tea.Msg {
				return copyResultMsg{err: clip.WriteAll(text)}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.session.Input() {
		m.session.SetInput(m.input.Value())
		m.copied = false
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.msgs.T("Title", nil)))
	b.WriteString("\n\n")
	b.WriteString(m.modeLine())
	b.WriteString("\n\n")

	b.WriteString(styles.Box.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(m.msgs.Plural("CharCount", m.session.CharCount(), nil)))
	b.WriteString("\n\n")

	b.WriteString(styles.Box.Render(m.outputText()))
	b.WriteString("\n")
	b.WriteString(m.infoLine())
	if m.copied {
		b.WriteString("  ")
		b.WriteString(styles.Badge.Render("✓ " + m.msgs.T("Copied", nil)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render(m.msgs.T("HelpKeys", nil)))

	if m.modal != "" {
		modal := styles.Modal.Render(m.modal + "\n\n" + styles.Muted.Render(m.msgs.T("ModalDismiss", nil)))
		b.WriteString("\n\n")
		if m.width > 0 {
			modal = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, modal)
		}
		b.WriteString(modal)
	}

	return b.String() + "\n"
}

// modeLine shows the input label on the left, highlighted.
func (m Model) modeLine() string {
	roman := m.msgs.T("ModeRoman", nil)
	text := m.msgs.T("ModeText", nil)

	in, out := roman, text
	if m.session.Mode() == internal.TextToRoman {
		in, out = text, roman
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		styles.ModeActive.Render(in),
		styles.Arrow.Render("→"),
		styles.ModeIdle.Render(out),
	)
}

// outputText is the rendered output pane content.
func (m Model) outputText() string {
	res := m.session.Last()
	switch res.Kind() {
	case translator.KindOK:
		return styles.Output.Render(res.Output)
	case translator.KindEmpty:
		return styles.Muted.Render(m.msgs.T("OutputPlaceholder", nil))
	default:
		return styles.OutputErr.Render(m.msgs.T(res.MessageID(), nil))
	}
}

func (m Model) infoLine() string {
	res := m.session.Last()
	switch {
	case res.Kind() == translator.KindInvalidCharacterSet:
		return styles.Error.Render(m.msgs.T("ResultInvalid", nil))
	case res.OK() && strings.TrimSpace(m.session.Input()) != "":
		return styles.Success.Render(m.msgs.T("ResultSuccess", nil))
	default:
		return ""
	}
}
