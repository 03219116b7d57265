package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/ui/theme"
)

// SubmitMsg is emitted when the user confirms a command line. An empty
// Input is a valid submission (it means "count one unit").
type SubmitMsg struct{ Input string }

var hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)

// hints must stay in sync with the switch in app/model.go executeCommand.
var commandHints = []string{
	"switch <task>",
	"start",
	"pause",
	"set-price <task> <price>",
	"list",
	"status",
	"stats day [YYYY-MM-DD]",
	"stats month [YYYY-MM]",
	"history [n]",
	"remove <id>",
	"help",
	"exit",
}

// Prompt is the always-focused command line at the bottom of the
// tracker screen, backed by bubbles/textinput.
type Prompt struct {
	input textinput.Model
	width int
}

func NewPrompt() Prompt {
	ti := textinput.New()
	ti.Placeholder = "command, a number, or enter for one unit…"
	ti.CharLimit = 256
	ti.Focus()
	return Prompt{input: ti}
}

func (p *Prompt) SetWidth(w int) {
	p.width = w
	p.input.Width = w - 6
}

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(p.input.Value())
		p.input.SetValue("")
		return p, func() tea.Msg { return SubmitMsg{Input: val} }
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	w := p.width
	if w < 20 {
		w = 64
	}
	return theme.PromptFrame.Width(w - 2).Render("> " + p.input.View())
}

// Hints returns the commands matching prefix, capped for display.
func Hints(prefix string, limit int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var matching []string
	for _, h := range commandHints {
		if prefix == "" || strings.HasPrefix(h, prefix) {
			matching = append(matching, hintStyle.Render("  "+h))
			if len(matching) == limit {
				break
			}
		}
	}
	return matching
}
