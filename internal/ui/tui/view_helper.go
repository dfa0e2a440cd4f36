package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/infra/reprfmt"
)

// clampString truncates s to maxWidth terminal cells, ellipsis included.
func clampString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// primarySummary is the one-line record shown under a specification in the list.
func primarySummary(s domain.Specification) string {
	out, err := reprfmt.Record(s.Primary().Fields())
	if err != nil {
		return "(" + err.Error() + ")"
	}
	return out
}

// renderSpecDetails lists every role of s with one field per line.
func renderSpecDetails(s domain.Specification, theme Theme) string {
	var b strings.Builder

	b.WriteString("Stage: ")
	b.WriteString(theme.Stage.Render(string(s.Stage())))
	b.WriteString("\n\n")

	for i, r := range s.Roles() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Role.Render(r.Name))
		b.WriteString(" (")
		b.WriteString(string(r.Trait.Kind()))
		if r.Trait == s.Primary() {
			b.WriteString(", primary")
		}
		b.WriteString(")\n")

		for _, f := range r.Trait.Fields() {
			v, err := reprfmt.Value(f.Value)
			if err != nil {
				v = "(" + err.Error() + ")"
			}
			b.WriteString("  - ")
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(v)
			b.WriteString("\n")
		}
	}

	return b.String()
}
