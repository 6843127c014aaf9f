package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medqa/internal/domain"
	"medqa/internal/service"
)

// QAPort is the service the form submits to.
type QAPort = domain.QAService

const (
	focusTopic = iota
	focusQuestion
	focusButton
	focusCount
)

type panelKind int

const (
	panelNone panelKind = iota
	panelSuccess
	panelError
	panelWarning
	panelException
)

const (
	warningText  = "Please enter both disease name and your question."
	notFoundText = "Could not find information for that disease."
	noInfoText   = "No usable information (symptoms, causes, treatment, diagnosis, prevention) found for that disease."
	busyText     = "Searching Wikipedia and generating answer..."
)

// answerMsg carries the outcome of one pipeline run back to Update.
type answerMsg struct {
	answer *domain.Answer
	err    error
}

// Model is the Bubble Tea model for the question form.
type Model struct {
	service  QAPort
	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	viewport viewport.Model
	busy     bool
	kind     panelKind
	message  string
	answer   *domain.Answer
	ready    bool
	// cancel aborts the in-flight pipeline run
	cancel context.CancelFunc
}

// New creates a new TUI model instance.
func New(service QAPort) Model {
	topic := textinput.New()
	topic.Prompt = "Disease:  "
	topic.Placeholder = "e.g. diabetes, malaria"
	topic.CharLimit = 200
	topic.Focus()

	question := textinput.New()
	question.Prompt = "Question: "
	question.Placeholder = "Ask your medical question"
	question.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		service:  service,
		inputs:   []textinput.Model{topic, question},
		spinner:  sp,
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and pipeline events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		fw, fh := panelStyle.GetFrameSize()
		// header, hint, two input boxes, button, spacer, caption
		reserved := 2 + 2*(1+fh) + 1 + 2 + 2
		m.viewport.Width = max(20, msg.Width-fw)
		m.viewport.Height = max(3, msg.Height-reserved-fh)
		for i := range m.inputs {
			m.inputs[i].Width = max(10, msg.Width-fw-len(m.inputs[i].Prompt)-1)
		}
		m.viewport.SetContent(m.renderAnswer())
		return m, nil

	case answerMsg:
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.busy = false
		m.setResult(msg.answer, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Global quits
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus - 1 + focusCount) % focusCount)
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case "enter":
			if m.focus != focusButton {
				return m, m.setFocus(m.focus + 1)
			}
			return m.submit()
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(f int) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	topic := strings.TrimSpace(m.inputs[focusTopic].Value())
	question := strings.TrimSpace(m.inputs[focusQuestion].Value())
	if topic == "" || question == "" {
		m.kind = panelWarning
		m.message = warningText
		m.answer = nil
		return m, nil
	}
	m.busy = true
	m.kind = panelNone
	m.answer = nil
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	svc := m.service
	ask := func() tea.Msg {
		ans, err := svc.Ask(ctx, topic, question)
		return answerMsg{answer: ans, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, ask)
}

func (m *Model) setResult(ans *domain.Answer, err error) {
	m.answer = nil
	if err == nil && ans == nil {
		err = errors.New("empty answer")
	}
	switch service.Classify(err) {
	case service.OutcomeSuccess:
		m.kind = panelSuccess
		m.answer = ans
		m.message = ""
	case service.OutcomeWarning:
		m.kind = panelWarning
		m.message = warningText
	case service.OutcomeNotFound:
		m.kind = panelError
		m.message = notFoundText
		if errors.Is(err, service.ErrNoInformation) {
			m.message = noInfoText
		}
	default:
		m.kind = panelException
		m.message = err.Error()
	}
	m.viewport.SetContent(m.renderAnswer())
	m.viewport.GotoTop()
}

// View renders the form and the current result panel.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("AI Medical Q&A"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Ask about any disease; answers come from Wikipedia. tab: next field  enter: submit  esc: quit"))
	b.WriteString("\n")
	for i := range m.inputs {
		style := inputBoxStyle
		if m.focus == i {
			style = focusedInputBoxStyle
		}
		b.WriteString(style.Render(m.inputs[i].View()))
		b.WriteString("\n")
	}
	button := buttonStyle.Render("[ Get Answer ]")
	if m.focus == focusButton {
		button = focusedButtonStyle.Render("[ Get Answer ]")
	}
	b.WriteString(button)
	b.WriteString("\n\n")
	b.WriteString(m.renderPanel())
	return b.String()
}

func (m Model) renderPanel() string {
	if m.busy {
		return m.spinner.View() + " " + busyText
	}
	switch m.kind {
	case panelWarning:
		return warningStyle.Render("! " + m.message)
	case panelError:
		return errorStyle.Render("x " + m.message)
	case panelException:
		return errorStyle.Render("Error: " + m.message)
	case panelSuccess:
		match := m.answer.Match
		caption := captionStyle.Render(fmt.Sprintf("Matched Q: %s (Score: %.2f)", match.Pair.Question, match.Score))
		if !match.Confident {
			caption += "\n" + warningStyle.Render("Low confidence: no section answers this question well enough.")
		}
		return panelStyle.Render(m.viewport.View()) + "\n" + caption
	}
	return ""
}

func (m Model) renderAnswer() string {
	if m.answer == nil {
		return ""
	}
	match := m.answer.Match
	var b strings.Builder
	b.WriteString(answerLabelStyle.Render("Answer: "))
	if m.answer.Preview != "" && m.answer.Preview != match.Answer {
		b.WriteString(m.answer.Preview)
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render(fmt.Sprintf("From %q (%s):", m.answer.Title, match.Pair.Category)))
		b.WriteString("\n")
	}
	b.WriteString(highlightBestSentence(match.Answer, m.answer.Translated))
	if m.viewport.Width > 0 {
		return lipgloss.NewStyle().Width(m.viewport.Width).Render(b.String())
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
