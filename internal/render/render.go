// Package render draws boards and check results for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"svw.info/sokoban/internal/domain"
)

var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	targetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	playerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	treasureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// UseColor resolves a color mode ("auto", "always", "never") for w.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Board writes b.String(), coloring each character when styled is set.
func Board(w io.Writer, b *domain.Board, styled bool) error {
	s := b.String()
	if !styled {
		_, err := io.WriteString(w, s)
		return err
	}
	var sb strings.Builder
	for _, ch := range s {
		if ch == '\n' || ch == ' ' {
			sb.WriteRune(ch)
			continue
		}
		sb.WriteString(styleFor(ch).Render(string(ch)))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func styleFor(ch rune) lipgloss.Style {
	switch ch {
	case '#':
		return wallStyle
	case '.':
		return targetStyle
	case domain.PlayerChar:
		return playerStyle
	case domain.TreasureChar:
		return treasureStyle
	default:
		return lipgloss.NewStyle()
	}
}

// Result is one row of a check report.
type Result struct {
	Source string
	Level  string
	Report domain.Report
	Err    error
}

// Status is the one-word verdict of r.
func (r Result) Status() string {
	switch {
	case r.Err != nil:
		return "error"
	case !r.Report.Valid:
		return "invalid"
	case r.Report.Solved:
		return "solved"
	default:
		return "valid"
	}
}

// Results writes a table of check results.
func Results(w io.Writer, results []Result, styled bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Level", "Size", "Treasures", "Targets", "Status", "Problem"})
	for _, r := range results {
		status := r.Status()
		if styled {
			if status == "valid" || status == "solved" {
				status = okStyle.Render(status)
			} else {
				status = failStyle.Render(status)
			}
		}
		problem := r.Report.Problem
		if r.Err != nil {
			problem = r.Err.Error()
		}
		size := ""
		if r.Err == nil {
			size = fmt.Sprintf("%dx%d", r.Report.Width, r.Report.Height)
		}
		t.AppendRow(table.Row{r.Source, r.Level, size, r.Report.Treasures, r.Report.Targets, status, problem})
	}
	t.Render()
}

// Levels writes a table of stored levels.
func Levels(w io.Writer, metas []domain.LevelMeta) {
	if len(metas) == 0 {
		_, _ = fmt.Fprintln(w, "(0 levels)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Created"})
	for _, m := range metas {
		t.AppendRow(table.Row{m.ID, m.Name, m.CreatedAt})
	}
	t.Render()
}
