package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "tally/internal/modules/catalog/dto"
	reportdto "tally/internal/modules/report/dto"
	trackerdto "tally/internal/modules/tracker/dto"
	"tally/internal/platform/timefmt"
	"tally/internal/ui/components"
	"tally/internal/ui/theme"
)

// Each port is the minimal interface this orchestration layer requires.

type trackerPort interface {
	Switch(ctx context.Context, task string) (trackerdto.StatusOutput, error)
	Start(ctx context.Context) (trackerdto.StatusOutput, error)
	Pause(ctx context.Context) (trackerdto.StatusOutput, error)
	Increment(ctx context.Context, n int) (trackerdto.StatusOutput, error)
	Finish(ctx context.Context) error
	Status(ctx context.Context) trackerdto.StatusOutput
}

type catalogPort interface {
	SetPrice(ctx context.Context, name string, price float64) (catalogdto.TaskOutput, error)
	List(ctx context.Context) ([]catalogdto.TaskOutput, error)
}

type reportPort interface {
	Day(ctx context.Context, label string) (reportdto.SummaryOutput, error)
	Month(ctx context.Context, label string) (reportdto.SummaryOutput, error)
	History(ctx context.Context, limit int) ([]reportdto.SessionOutput, error)
	Remove(ctx context.Context, id int64) error
}

type tickMsg time.Time

const maxTranscript = 500

// Model is the root Bubble Tea model: a transcript of command results,
// a live status line for the active session, and an always-focused
// prompt. Business logic stays behind the port interfaces.
type Model struct {
	location *time.Location

	tracker trackerPort
	catalog catalogPort
	reports reportPort

	prompt     components.Prompt
	transcript []string
	status     trackerdto.StatusOutput
	width      int
	height     int
}

func NewModel(location *time.Location, tracker trackerPort, catalog catalogPort, reports reportPort) Model {
	m := Model{
		location: location,
		tracker:  tracker,
		catalog:  catalog,
		reports:  reports,
		prompt:   components.NewPrompt(),
	}
	m.status = tracker.Status(context.Background())
	m.say(theme.Muted.Render("type help for commands"))
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(m.width)
		return m, nil

	case tickMsg:
		m.status = m.tracker.Status(context.Background())
		return m, tickCmd()

	case components.SubmitMsg:
		return m.executeCommand(msg.Input)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.finishAndQuit()
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	prompt := m.prompt.View()

	contentH := m.height - lipgloss.Height(statusBar) - lipgloss.Height(prompt)
	if contentH < 1 {
		contentH = 1
	}
	lines := m.transcript
	if len(lines) > contentH {
		lines = lines[len(lines)-contentH:]
	}
	content := lipgloss.NewStyle().Width(m.width).Height(contentH).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, statusBar, content, prompt)
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.status.HasActive && m.status.Running:
		left = theme.Hot.Render("● " + m.status.Task + " " + timefmt.Clock(m.status.Elapsed))
	case m.status.HasActive:
		left = theme.Cold.Render("■ " + m.status.Task + " " + timefmt.Clock(m.status.Elapsed))
	default:
		left = theme.Muted.Render("■ no-task")
	}
	right := theme.Muted.Render("enter:one unit  help:commands  exit:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) executeCommand(input string) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	// A bare enter counts one unit; a bare number counts that many.
	if input == "" {
		return m.increment(ctx, 1)
	}
	parts := strings.Fields(input)
	if n, err := strconv.Atoi(parts[0]); err == nil {
		return m.increment(ctx, n)
	}

	switch parts[0] {
	case "switch":
		if len(parts) < 2 {
			m.say(usage("switch <task>"))
			return m, nil
		}
		task := strings.Join(parts[1:], " ")
		status, err := m.tracker.Switch(ctx, task)
		if err != nil {
			m.sayErr(err)
			return m, nil
		}
		m.status = status
		m.say("switched to " + theme.Title.Render(task) + theme.Muted.Render(" (paused, start to run)"))

	case "start", "s":
		status, err := m.tracker.Start(ctx)
		if err != nil {
			m.sayErr(err)
			return m, nil
		}
		m.status = status
		m.say("running " + theme.Title.Render(status.Task))

	case "pause", "p":
		status, err := m.tracker.Pause(ctx)
		if err != nil {
			m.sayErr(err)
			return m, nil
		}
		m.status = status
		m.say("paused " + theme.Title.Render(status.Task) + " at " + timefmt.Clock(status.Elapsed))

	case "set-price":
		if len(parts) < 3 {
			m.say(usage("set-price <task> <price>"))
			return m, nil
		}
		price, err := strconv.ParseFloat(parts[len(parts)-1], 64)
		if err != nil {
			m.sayErr(fmt.Errorf("invalid price: %s", parts[len(parts)-1]))
			return m, nil
		}
		task := strings.Join(parts[1:len(parts)-1], " ")
		out, err := m.catalog.SetPrice(ctx, task, price)
		if err != nil {
			m.sayErr(err)
			return m, nil
		}
		m.say(fmt.Sprintf("%s pays %.2f per unit", theme.Title.Render(out.Name), out.Price))

	case "list":
		tasks, err := m.catalog.List(ctx)
		if err != nil {
			m.sayErr(err)
			return m, nil
		}
		if len(tasks) == 0 {
			m.say(theme.Muted.Render("no tasks yet, set-price to add one"))
			return m, nil
		}
		for _, task := range tasks {
			m.say(fmt.Sprintf("  %s  %.2f/unit", task.Name, task.Price))
		}

	case "status":
		m.say(m.statusLine())
		today, err := m.reports.Day(ctx, "")
		if err != nil {
			m.sayErr(err)
			return m, nil
		}
		m.saySummary(today)

	case "stats":
		if len(parts) < 2 {
			m.say(usage("stats day|month [label]"))
			return m, nil
		}
		label := ""
		if len(parts) >= 3 {
			label = parts[2]
		}
		var (
			summary reportdto.SummaryOutput
			err     error
		)
		switch parts[1] {
		case "day":
			summary, err = m.reports.Day(ctx, label)
		case "month":
			summary, err = m.reports.Month(ctx, label)
		default:
			m.say(usage("stats day|month [label]"))
			return m, nil
		}
		if err != nil {
			m.sayErr(err)
			return m, nil
		}
		m.saySummary(summary)

	case "history":
		limit := 10
		if len(parts) >= 2 {
			n, err := strconv.Atoi(parts[1])
			if err != nil || n < 1 {
				m.sayErr(fmt.Errorf("invalid history limit: %s", parts[1]))
				return m, nil
			}
			limit = n
		}
		sessions, err := m.reports.History(ctx, limit)
		if err != nil {
			m.sayErr(err)
			return m, nil
		}
		if len(sessions) == 0 {
			m.say(theme.Muted.Render("no sessions recorded"))
			return m, nil
		}
		for _, s := range sessions {
			m.say(fmt.Sprintf("  #%d  %s  %s  %s  %d × %.2f = %.2f",
				s.ID,
				s.StartedAt.In(m.location).Format("2006-01-02 15:04"),
				s.Task,
				timefmt.Clock(s.Duration),
				s.Count, s.Price, s.Earned))
		}

	case "remove":
		if len(parts) < 2 {
			m.say(usage("remove <id>"))
			return m, nil
		}
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			m.sayErr(fmt.Errorf("invalid session id: %s", parts[1]))
			return m, nil
		}
		if err := m.reports.Remove(ctx, id); err != nil {
			m.sayErr(err)
			return m, nil
		}
		m.say(fmt.Sprintf("removed session #%d", id))

	case "help":
		for _, hint := range components.Hints("", 20) {
			m.say(hint)
		}

	case "exit", "quit":
		return m.finishAndQuit()

	default:
		m.sayErr(fmt.Errorf("unknown command: %s", parts[0]))
	}
	return m, nil
}

func (m Model) increment(ctx context.Context, n int) (tea.Model, tea.Cmd) {
	status, err := m.tracker.Increment(ctx, n)
	if err != nil {
		m.sayErr(err)
		return m, nil
	}
	task := m.status.Task
	elapsed := m.status.Elapsed
	m.status = status
	unit := "unit"
	if n != 1 {
		unit = "units"
	}
	m.say(fmt.Sprintf("logged %d %s of %s (%s)", n, unit, theme.Title.Render(task), timefmt.Clock(elapsed)))
	return m, nil
}

// finishAndQuit persists the active session before leaving. On a
// storage failure the session stays active and the screen stays up.
func (m Model) finishAndQuit() (tea.Model, tea.Cmd) {
	if err := m.tracker.Finish(context.Background()); err != nil {
		m.sayErr(fmt.Errorf("could not save session, staying open: %w", err))
		return m, nil
	}
	return m, tea.Quit
}

func (m Model) statusLine() string {
	switch {
	case m.status.HasActive && m.status.Running:
		return "running " + theme.Title.Render(m.status.Task) + " at " + timefmt.Clock(m.status.Elapsed)
	case m.status.HasActive:
		return "paused " + theme.Title.Render(m.status.Task) + " at " + timefmt.Clock(m.status.Elapsed)
	default:
		return theme.Muted.Render("no active task")
	}
}

func (m *Model) saySummary(summary reportdto.SummaryOutput) {
	m.say(theme.Title.Render(summary.Label))
	if summary.Empty {
		m.say(theme.Muted.Render("  no sessions"))
		return
	}
	for _, group := range summary.PerTask {
		m.say(fmt.Sprintf("  %-20s %3d  %s  %8.2f  %6.2f/h",
			group.Task, group.Count, timefmt.Clock(group.Duration), group.Earned, group.HourlyRate))
	}
	total := summary.Total
	m.say(theme.Hot.Render(fmt.Sprintf("  %-20s %3d  %s  %8.2f  %6.2f/h",
		"total", total.Count, timefmt.Clock(total.Duration), total.Earned, total.HourlyRate)))
}

func (m *Model) say(line string) {
	m.transcript = append(m.transcript, line)
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
}

func (m *Model) sayErr(err error) {
	m.say(theme.Error.Render(err.Error()))
}

func usage(text string) string {
	return theme.Muted.Render("usage: " + text)
}
