package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel keeps the browser alive when rendering a specification panics,
// returning to the specification list instead of tearing down the terminal.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered", s.m.panicAttrs("tui.update", r)...)

			s.m.scr = screenSpecs
			s.m.selected = nil
			s.m.loading = false
			s.m.toast = "Unexpected error (see logs)"
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered", s.m.panicAttrs("tui.view", r)...)
			out = "Unexpected error (see logs)"
		}
	}()
	return s.m.View()
}

// panicAttrs names the screen, pipeline and stage that were active when r was raised.
func (m model) panicAttrs(where string, r any) []any {
	stage := "-"
	if m.selected != nil {
		stage = string(m.selected.Stage())
	}
	return []any{
		"where", where,
		"screen", m.scr.String(),
		"pipeline", m.pipelinePath,
		"stage", stage,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}
}

var _ tea.Model = (*safeModel)(nil)
