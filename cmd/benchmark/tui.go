package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arduano/snake-solver/rules"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	killStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type model struct {
	total       int
	gamesPlayed int
	finished    int
	killed      int
	failed      int
	moves       int64
	startTime   time.Time
	recentGames []string
	updates     <-chan GameUpdate
	done        bool
}

func initialModel(updates <-chan GameUpdate, total int) model {
	return model{
		total:     total,
		startTime: time.Now(),
		updates:   updates,
	}
}

type TickMsg time.Time

type doneMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func waitForUpdate(updates <-chan GameUpdate) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return u
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case TickMsg:
		m.moves = totalMoves.Load()
		if m.done {
			return m, nil
		}
		return m, tickCmd()
	case doneMsg:
		m.done = true
		m.moves = totalMoves.Load()
		return m, nil
	case GameUpdate:
		m.gamesPlayed++
		var line string
		switch {
		case msg.Err != nil:
			m.failed++
			line = killStyle.Render(fmt.Sprintf("%-10s size %-3d seed %d: %v", msg.Job.solver, msg.Job.size, msg.Job.seed, msg.Err))
		case msg.Result.Result == rules.Killed:
			m.killed++
			line = killStyle.Render(fmt.Sprintf("%-10s size %-3d seed %d: killed after %d steps", msg.Job.solver, msg.Job.size, msg.Job.seed, msg.Result.Steps))
		default:
			m.finished++
			line = okStyle.Render(fmt.Sprintf("%-10s size %-3d seed %d: %d steps, %d plans", msg.Job.solver, msg.Job.size, msg.Job.seed, msg.Result.Steps, msg.Result.Plans))
		}
		m.recentGames = append([]string{line}, m.recentGames...)
		if len(m.recentGames) > 10 {
			m.recentGames = m.recentGames[:10]
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	movesPerSec := float64(m.moves) / duration.Seconds()
	if duration.Seconds() < 1 {
		movesPerSec = 0
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Snake solver benchmark") + "\n\n")
	fmt.Fprintf(&sb, "Games:     %d/%d\n", m.gamesPlayed, m.total)
	fmt.Fprintf(&sb, "Finished:  %d\n", m.finished)
	fmt.Fprintf(&sb, "Killed:    %d\n", m.killed)
	fmt.Fprintf(&sb, "Failed:    %d\n", m.failed)
	fmt.Fprintf(&sb, "Moves:     %d\n", m.moves)
	fmt.Fprintf(&sb, "Duration:  %s\n", duration.Round(time.Second))
	fmt.Fprintf(&sb, "Moves/Sec: %.0f\n\n", movesPerSec)

	sb.WriteString("Recent Games:\n")
	for _, g := range m.recentGames {
		sb.WriteString(g + "\n")
	}

	if m.done {
		sb.WriteString("\nAll games done. Press q to exit.\n")
	} else {
		sb.WriteString("\nPress q to stop.\n")
	}
	return sb.String()
}
