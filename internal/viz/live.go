package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/horizon/internal/shoot"
)

const maxVisibleIterations = 12

type iterMsg struct {
	n        int
	h0       float64
	residual float64
}

type doneMsg struct {
	res shoot.Result
	err error
}

type tickMsg time.Time

// liveModel shows secant iterations as they land.
type liveModel struct {
	scheme  string
	sources []float64
	iters   []iterMsg
	res     shoot.Result
	err     error
	done    bool
	frame   int
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m liveModel) Init() tea.Cmd {
	return tick()
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case iterMsg:
		m.iters = append(m.iters, msg)
		return m, nil
	case doneMsg:
		m.done = true
		m.res = msg.res
		m.err = msg.err
		return m, nil
	case tickMsg:
		m.frame++
		if m.done {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m liveModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("shooting for the horizon  •  sources %v  •  %s", m.sources, m.scheme)))
	b.WriteString("\n\n")

	start := 0
	if len(m.iters) > maxVisibleIterations {
		start = len(m.iters) - maxVisibleIterations
	}
	for _, it := range m.iters[start:] {
		b.WriteString(labelStyle.Render(fmt.Sprintf("iter %d", it.n)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("h0 = %.12f   R = %+.3e", it.h0, it.residual)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case !m.done:
		b.WriteString(valueStyle.Render(spinnerFrames[m.frame%len(spinnerFrames)] + " iterating..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("failed: " + m.err.Error()))
	default:
		b.WriteString(headerStyle.Render(fmt.Sprintf("converged: h0* = %.12f after %d iterations", m.res.Root, m.res.Iterations)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q to quit"))
	return b.String()
}

// RunLive executes solve in the background and renders each accepted secant
// iterate as it arrives. It returns the solve outcome once the viewer exits.
func RunLive(scheme string, sources []float64, solve func(onIter func(n int, h0, residual float64)) (shoot.Result, error)) (shoot.Result, error) {
	p := tea.NewProgram(liveModel{scheme: scheme, sources: sources})

	var res shoot.Result
	var solveErr error
	go func() {
		res, solveErr = solve(func(n int, h0, residual float64) {
			p.Send(iterMsg{n: n, h0: h0, residual: residual})
		})
		p.Send(doneMsg{res: res, err: solveErr})
	}()

	if _, err := p.Run(); err != nil {
		return res, err
	}
	return res, solveErr
}
