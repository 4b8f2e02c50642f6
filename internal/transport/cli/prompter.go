package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user cancels a prompt
var ErrAborted = errors.New("prompt aborted")

// Prompter collects input from the user
type Prompter interface {
	// Select asks the user to pick one of choices
	Select(ctx context.Context, title string, choices []string) (string, error)

	// Input asks the user for a line of free text
	Input(ctx context.Context, title string) (string, error)
}

// TeaPrompter runs a short-lived bubbletea program per prompt
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter creates a prompter reading keys from in and drawing to out
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

func (p *TeaPrompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}
	return final, nil
}

func (p *TeaPrompter) Select(ctx context.Context, title string, choices []string) (string, error) {
	final, err := p.run(ctx, newSelectModel(title, choices))
	if err != nil {
		return "", err
	}

	m := final.(selectModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.choices[m.cursor], nil
}

func (p *TeaPrompter) Input(ctx context.Context, title string) (string, error) {
	final, err := p.run(ctx, newInputModel(title))
	if err != nil {
		return "", err
	}

	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return string(m.value), nil
}

// selectModel is a single-choice list navigated with arrow keys
type selectModel struct {
	title   string
	choices []string
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(title string, choices []string) selectModel {
	return selectModel{title: title, choices: choices}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyUp, tea.KeyShiftTab:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown, tea.KeyTab:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("? "+m.title) + " ")

	if m.done {
		b.WriteString(answerStyle.Render(m.choices[m.cursor]))
		b.WriteString("\n")
		return b.String()
	}
	if m.aborted {
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(hintStyle.Render("(use arrow keys)"))
	b.WriteString("\n")
	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("» " + choice))
		} else {
			b.WriteString("  " + choice)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// inputModel is a single line of free text
type inputModel struct {
	title   string
	value   []rune
	done    bool
	aborted bool
}

func newInputModel(title string) inputModel {
	return inputModel{title: title}
}

func (m inputModel) Init() tea.Cmd {
	return nil
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeySpace:
		m.value = append(m.value, ' ')
	case tea.KeyRunes:
		m.value = append(m.value, key.Runes...)
	}

	return m, nil
}

func (m inputModel) View() string {
	line := questionStyle.Render("? "+m.title) + " "
	if m.done {
		return line + answerStyle.Render(string(m.value)) + "\n"
	}
	if m.aborted {
		return line + "\n"
	}
	return line + string(m.value) + cursorStyle.Render("_") + "\n"
}
