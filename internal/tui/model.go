// Package tui is the interactive question loop. Every Enter runs one
// independent pipeline pass; no dialogue state carries over between
// questions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appmodel "github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/util"
)

// Asker is the TUI-facing subset of the orchestrator.
type Asker interface {
	Ask(question string) (appmodel.Answer, error)
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	citationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	answerBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionBox   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// Model is the Bubble Tea model for the question loop.
type Model struct {
	asker    Asker
	input    textinput.Model
	viewport viewport.Model
	answer   *appmodel.Answer
	status   string
	summary  string
	ready    bool
	width    int
}

// New creates the TUI model. summary describes the loaded corpus.
func New(asker Asker, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Sorunuzu yazın ve Enter'a basın"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{asker: asker, input: ti, viewport: vp, summary: summary, status: "Hazır."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		_, ah := answerBox.GetFrameSize()
		_, qh := questionBox.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header+summary, status, question box, spacer
		vh := msg.Height - reserved - ah
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-4)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderAnswer())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.String() == "esc" {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			result, err := m.asker.Ask(question)
			if err != nil {
				m.status = errorStyle.Render("Hata: " + err.Error())
				m.answer = nil
			} else {
				m.status = statusStyle.Render(fmt.Sprintf("Cevaplandı: %q", util.TruncateRunes(question, 60)))
				m.answer = &result
			}
			m.input.SetValue("")
			m.viewport.SetContent(m.renderAnswer())
			m.viewport.GotoTop()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the layout: header, answer box, question box, status line.
func (m Model) View() string {
	if !m.ready {
		return "Yükleniyor..."
	}
	header := headerStyle.Render("bolumrag — soru/cevap")
	summary := summaryStyle.Render(m.summary)
	answerView := answerBox.Render(m.viewport.View())
	questionView := questionBox.Render(m.input.View())
	return header + "\n" + summary + "\n" + answerView + "\n" + questionView + "\n" + m.status
}

func (m Model) renderAnswer() string {
	if m.answer == nil {
		return "Henüz soru sorulmadı."
	}
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	b.WriteString(util.WrapToWidth(m.answer.Text, width))
	if len(m.answer.Citations) > 0 {
		b.WriteString("\n\n")
		b.WriteString(citationStyle.Render("Kaynaklar:"))
		for _, citation := range m.answer.Citations {
			b.WriteString("\n")
			b.WriteString(citationStyle.Render("  " + citation))
		}
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
