package tui

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
)

type screen int

const (
	screenSpecs screen = iota
	screenDetail
	screenPipelines
)

func (s screen) String() string {
	switch s {
	case screenSpecs:
		return "specs"
	case screenDetail:
		return "detail"
	case screenPipelines:
		return "pipelines"
	}
	return "unknown"
}

type specItem struct {
	spec domain.Specification
}

func (i specItem) Title() string       { return i.spec.Title() }
func (i specItem) Description() string { return clampString(primarySummary(i.spec), 120) }
func (i specItem) FilterValue() string { return i.spec.Title() }

type pipelineItem struct {
	ref  domain.PipelineRef
	root string
}

func (i pipelineItem) Title() string { return i.ref.Name }
func (i pipelineItem) Description() string {
	if rel, err := filepath.Rel(i.root, i.ref.Path); err == nil {
		return rel
	}
	return i.ref.Path
}
func (i pipelineItem) FilterValue() string { return i.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr       screen
	specs     list.Model
	pipelines list.Model

	pipeline     *domain.Pipeline
	pipelinePath string
	selected     domain.Specification
	loading      bool
	toast        string

	workspaceFound bool
	workspaceRoot  string
}

// Run opens the browser on deps.PipelinePath and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	specs := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	specs.Title = "Specifications"
	specs.SetShowStatusBar(false)
	specs.SetFilteringEnabled(true)
	specs.SetShowHelp(false)

	pipelines := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	pipelines.Title = "Pipelines"
	pipelines.SetShowStatusBar(false)
	pipelines.SetShowHelp(false)

	return model{
		theme:        DefaultTheme(),
		deps:         deps,
		scr:          screenSpecs,
		specs:        specs,
		pipelines:    pipelines,
		pipelinePath: deps.PipelinePath,
		loading:      true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		cmdRefreshWorkspace(m.deps),
		cmdLoadPipeline(m.deps, m.pipelinePath),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.specs.SetSize(w-8, h-12)
		m.pipelines.SetSize(w-8, h-12)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case pipelineLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		cmd := m.setPipeline(msg.path, msg.pipeline)
		m.toast = ""
		return m, cmd

	case pipelinesListedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenSpecs
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, pipelineItem{ref: r, root: msg.root})
		}
		cmd := m.pipelines.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if m.filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenSpecs {
				return m, tea.Quit
			}
			m.scr = screenSpecs
			m.selected = nil
			return m, nil

		case "esc", "b":
			if m.scr != screenSpecs {
				m.scr = screenSpecs
				m.selected = nil
				return m, nil
			}

		case "p":
			if m.scr == screenSpecs && m.workspaceFound {
				m.scr = screenPipelines
				return m, cmdListPipelines(m.deps, m.workspaceRoot)
			}

		case "r":
			if m.scr == screenSpecs {
				m.loading = true
				return m, cmdLoadPipeline(m.deps, m.pipelinePath)
			}

		case "enter":
			switch m.scr {
			case screenSpecs:
				it, ok := m.specs.SelectedItem().(specItem)
				if !ok {
					return m, nil
				}
				m.selected = it.spec
				m.scr = screenDetail
				return m, nil

			case screenPipelines:
				it, ok := m.pipelines.SelectedItem().(pipelineItem)
				if !ok {
					return m, nil
				}
				m.scr = screenSpecs
				m.loading = true
				return m, cmdLoadPipeline(m.deps, it.ref.Path)
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenSpecs:
		m.specs, cmd = m.specs.Update(msg)
	case screenPipelines:
		m.pipelines, cmd = m.pipelines.Update(msg)
	}
	return m, cmd
}

func (m *model) setPipeline(path string, p *domain.Pipeline) tea.Cmd {
	specs := p.Specifications()
	items := make([]list.Item, 0, len(specs))
	for _, s := range specs {
		items = append(items, specItem{spec: s})
	}
	cmd := m.specs.SetItems(items)
	m.specs.Title = "Specifications · " + p.Name
	m.pipeline = p
	m.pipelinePath = path
	m.scr = screenSpecs
	m.selected = nil
	return cmd
}

func (m model) filtering() bool {
	switch m.scr {
	case screenSpecs:
		return m.specs.FilterState() == list.Filtering
	case screenPipelines:
		return m.pipelines.FilterState() == list.Filtering
	}
	return false
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("traitspec") + "\n" +
		m.theme.Subtitle.Render("asset pipeline specifications composed from shared traits") + "\n"

	banner := m.theme.Help.Render("No workspace (built-in pipelines only)")
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	}

	status := ""
	if m.loading {
		status = m.theme.Help.Render("loading…") + "\n"
	}
	if m.toast != "" {
		status += m.theme.Toast.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenSpecs:
		keys := "↑/↓ navigate • enter open • / search • r reload • q quit"
		if m.workspaceFound {
			keys = "↑/↓ navigate • enter open • / search • p pipelines • r reload • q quit"
		}
		return wrap.Render(header + "\n" + banner + "\n\n" + status +
			m.theme.Card.Render(m.specs.View()) + "\n" + m.theme.Help.Render(keys))

	case screenDetail:
		if m.selected == nil {
			return wrap.Render(header + "\n" + "no specification selected")
		}
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.selected.Title()) + "\n\n" +
				renderSpecDetails(m.selected, m.theme) + "\n" +
				m.theme.Help.Render("esc/b back • q home"),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + status + card)

	case screenPipelines:
		return wrap.Render(header + "\n" + banner + "\n\n" + status +
			m.theme.Card.Render(m.pipelines.View()) + "\n" +
			m.theme.Help.Render("↑/↓ navigate • enter load • esc back"))

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return d.Logger
}
