package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldSave
)

// TUI presents the credential prompt as a full-screen terminal form. It is
// modal: Prompt blocks until the user accepts or cancels.
type TUI struct{}

func NewTUI() *TUI {
	return &TUI{}
}

func (t *TUI) Prompt(req Request) (*Response, error) {
	model := newPromptModel(req)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, &PromptError{Err: fmt.Errorf("failed to run prompt: %w", err)}
	}

	m, ok := final.(promptModel)
	if !ok || !m.accepted {
		return nil, ErrCancelled
	}
	return &Response{
		Username:    m.inputs[fieldUsername],
		Password:    m.inputs[fieldPassword],
		SaveChecked: m.saveChecked,
	}, nil
}

type promptModel struct {
	req         Request
	inputs      []string
	cursor      int
	saveChecked bool
	accepted    bool
}

func newPromptModel(req Request) promptModel {
	return promptModel{
		req:         req,
		inputs:      []string{req.Username, req.Password},
		saveChecked: req.SaveChecked,
	}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "ctrl+c":
		m.accepted = false
		return m, tea.Quit
	case "up", "shift+tab":
		m.cursor = (m.cursor - 1 + m.fieldCount()) % m.fieldCount()
	case "down", "tab":
		m.cursor = (m.cursor + 1) % m.fieldCount()
	case "enter":
		if m.cursor == m.fieldCount()-1 {
			m.accepted = true
			return m, tea.Quit
		}
		m.cursor++
	case " ":
		if m.cursor == fieldSave {
			m.saveChecked = !m.saveChecked
		} else {
			m.inputs[m.cursor] += " "
		}
	case "backspace":
		if m.cursor < len(m.inputs) && len(m.inputs[m.cursor]) > 0 {
			m.inputs[m.cursor] = m.inputs[m.cursor][:len(m.inputs[m.cursor])-1]
		}
	case "ctrl+u":
		if m.cursor < len(m.inputs) {
			m.inputs[m.cursor] = ""
		}
	default:
		if m.cursor < len(m.inputs) {
			for _, char := range key.String() {
				if char >= 32 && char <= 126 {
					m.inputs[m.cursor] += string(char)
				}
			}
		}
	}
	return m, nil
}

func (m promptModel) fieldCount() int {
	if m.req.ShowSave {
		return 3
	}
	return 2
}

func (m promptModel) View() string {
	var b strings.Builder

	if m.req.MainInstruction != "" {
		b.WriteString(titleStyle.Render(m.req.MainInstruction))
		b.WriteString("\n")
	}
	if m.req.SupplementaryText != "" {
		b.WriteString(subtitleStyle.Render(m.req.SupplementaryText))
		b.WriteString("\n")
	}

	b.WriteString(m.renderField(fieldUsername, "Username", m.inputs[fieldUsername]))
	b.WriteString(m.renderField(fieldPassword, "Password", strings.Repeat("•", len(m.inputs[fieldPassword]))))

	if m.req.ShowSave {
		check := "[ ]"
		if m.saveChecked {
			check = "[x]"
		}
		line := fmt.Sprintf("%s Save credential", check)
		if m.cursor == fieldSave {
			line = focusedInputStyle.Render(line)
		} else {
			line = inputStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • space: toggle save • enter: accept • esc: cancel"))

	return borderStyle.Render(b.String())
}

func (m promptModel) renderField(index int, label, value string) string {
	style := inputStyle
	if m.cursor == index {
		style = focusedInputStyle
	}
	return labelStyle.Render(label) + "\n" + style.Render(value+" ") + "\n"
}
