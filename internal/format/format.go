// Package format renders lint problems for humans and machines. It only
// consumes finished problems; it knows nothing about how they were produced.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/maxbolgarin/commitlint/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	codeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	tipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	urlStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Underline(true)
)

// Renderer turns problems into terminal output.
type Renderer struct {
	noColor bool
}

// NewRenderer creates a renderer. With noColor set it emits plain text,
// which is what CI logs want.
func NewRenderer(noColor bool) *Renderer {
	return &Renderer{noColor: noColor}
}

// RenderAll renders every problem separated by blank lines.
func (r *Renderer) RenderAll(problems []model.Problem) string {
	parts := make([]string, 0, len(problems))
	for _, p := range problems {
		parts = append(parts, r.Render(p))
	}
	return strings.Join(parts, "\n\n")
}

// Render renders one problem: title with code, the message excerpt with
// caret markers under each annotated span, the tip, and the help link.
func (r *Renderer) Render(p model.Problem) string {
	var b strings.Builder

	b.WriteString(r.style(titleStyle, p.Title))
	b.WriteString(" ")
	b.WriteString(r.style(codeStyle, "("+p.Code.String()+")"))
	b.WriteString("\n")

	b.WriteString(r.renderExcerpt(p))

	b.WriteString("\n")
	for _, line := range strings.Split(p.Tip, "\n") {
		b.WriteString(r.style(tipStyle, "  "+line))
		b.WriteString("\n")
	}

	if p.URL != "" {
		b.WriteString(r.style(gutterStyle, "  see: "))
		b.WriteString(r.style(urlStyle, p.URL))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) renderExcerpt(p model.Problem) string {
	var b strings.Builder
	lines := strings.Split(strings.TrimRight(p.CommitText, "\n"), "\n")

	offset := 0
	for _, line := range lines {
		b.WriteString(r.style(gutterStyle, "  | "))
		b.WriteString(line)
		b.WriteString("\n")

		for _, a := range p.Annotations {
			if a.Offset < offset || a.Offset > offset+len(line) {
				continue
			}
			column := utf8.RuneCountInString(line[:a.Offset-offset])
			b.WriteString(r.style(gutterStyle, "  | "))
			b.WriteString(strings.Repeat(" ", column))
			b.WriteString(r.style(labelStyle, strings.Repeat("^", max(a.Length, 1))+" "+a.Label))
			b.WriteString("\n")
		}

		offset += len(line) + 1
	}
	return b.String()
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}
