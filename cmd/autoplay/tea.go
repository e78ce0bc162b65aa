package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arduano/snake-solver/autoplay"
	"github.com/arduano/snake-solver/render"
	"github.com/arduano/snake-solver/rules"
	"github.com/arduano/snake-solver/solver"
)

var glyphStyles = map[render.Glyph]lipgloss.Style{
	render.GlyphEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	render.GlyphFood:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	render.GlyphHead:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	render.GlyphBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	render.GlyphPath:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	render.GlyphWall:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func styleGlyph(g render.Glyph, text string) string {
	if st, ok := glyphStyles[g]; ok {
		return st.Render(text)
	}
	return text
}

type model struct {
	newGame    gameFactory
	solverName string
	player     *autoplay.Player

	speed  time.Duration
	paused bool
	last   rules.StepResult
	err    error

	showWalls bool
	showPath  bool
	showCosts bool
}

type TickMsg time.Time

func newModel(newGame gameFactory, solverName string, speed time.Duration) (model, error) {
	p, err := newGame()
	if err != nil {
		return model{}, err
	}
	return model{
		newGame:    newGame,
		solverName: solverName,
		player:     p,
		speed:      speed,
		showWalls:  true,
		showPath:   true,
	}, nil
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.speed)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n":
			// Single step while paused.
			if m.paused {
				m.step()
			}
		case "w":
			m.showWalls = !m.showWalls
		case "p":
			m.showPath = !m.showPath
		case "c":
			m.showCosts = !m.showCosts
		case "+", "=":
			m.speed = max(m.speed/2, time.Millisecond)
		case "-":
			m.speed = min(m.speed*2, 2*time.Second)
		case "r":
			p, err := m.newGame()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.player, m.err, m.last = p, nil, rules.Stepped
		}
		return m, nil
	case TickMsg:
		if !m.paused {
			m.step()
		}
		return m, tickCmd(m.speed)
	}
	return m, nil
}

func (m *model) step() {
	if m.player.State() != autoplay.Playing || m.err != nil {
		return
	}
	r, err := m.player.Step()
	m.last, m.err = r, err
}

func (m model) View() string {
	w := m.player.World()
	opts := render.Options{Style: styleGlyph}

	insp, _ := m.player.Solver().(solver.Inspector)
	if m.showWalls && insp != nil {
		opts.Walls = insp.WallGrid()
	}
	if m.showPath {
		path := m.player.Path()
		opts.Path = &path
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("snake autoplay: "+m.solverName) + "\n")
	sb.WriteString(render.Summary(w))
	fmt.Fprintf(&sb, " plans=%d speed=%s", m.player.Plans(), m.speed)
	if m.paused {
		sb.WriteString(" [paused]")
	}
	sb.WriteString("\n\n")
	sb.WriteString(render.Board(w, opts))

	if m.showCosts && insp != nil {
		sb.WriteString("\n" + render.Costs(insp.CostField()))
	}
	if m.player.State() != autoplay.Playing {
		sb.WriteString("\n" + headerStyle.Render(stepResultText(m.last)) + "\n")
	}
	if m.err != nil {
		sb.WriteString("\nerror: " + m.err.Error() + "\n")
	}
	sb.WriteString("\nspace pause  n step  w walls  p path  c costs  +/- speed  r restart  q quit\n")
	return sb.String()
}
