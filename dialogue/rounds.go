package dialogue

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hop.computer/seq/stress"
)

// roundMsg carries the outcome of one stress run back to the event loop.
type roundMsg struct {
	results []stress.Result
	err     error
}

// roundsModel implements tea.Model. It runs one stress round on start and
// another each time "n" is pressed; any other key quits.
type roundsModel struct {
	ctx     context.Context
	runner  *stress.Runner
	results []stress.Result
	rounds  int
	running bool
	err     error
}

var _ tea.Model = roundsModel{}

func (m roundsModel) run() tea.Msg {
	results, err := m.runner.Run(m.ctx)
	return roundMsg{results: results, err: err}
}

// Init starts the first round.
func (m roundsModel) Init() tea.Cmd {
	return m.run
}

// Update implements the tea.Model interface. Keys pressed while a round is
// running are ignored, except ctrl+c.
func (m roundsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roundMsg:
		m.running = false
		m.rounds++
		m.results, m.err = msg.results, msg.err
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.running {
			return m, nil
		}
		if msg.String() == "n" {
			m.running = true
			return m, m.run
		}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the latest results and the key hint.
func (m roundsModel) View() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error()) + "\n"
	}
	if m.rounds == 0 || m.running {
		return titleStyle.Render("running...") + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderResults(m.results, true),
		hintStyle.Render("n: another round, any other key: quit"),
	) + "\n"
}

// RunRounds runs the interactive loop until the user quits. It returns the
// number of completed runs and the error of the last one, if any.
func RunRounds(ctx context.Context, runner *stress.Runner) (int, error) {
	mod := roundsModel{
		ctx:     ctx,
		runner:  runner,
		running: true,
	}
	m, err := tea.NewProgram(mod).Run()
	if err != nil {
		return 0, err
	}
	final := m.(roundsModel)
	return final.rounds, final.err
}
