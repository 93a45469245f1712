package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/specialistvlad/fibbench/internal/bench"
)

// ColorMode controls whether status lines carry ANSI styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode. An empty string selects ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode '%s': must be 'auto', 'always', or 'never'", s)
	}
}

// Printer writes status lines to a writer.
type Printer struct {
	w        io.Writer
	finished lipgloss.Style
	pass     lipgloss.Style
	fail     lipgloss.Style
}

// NewPrinter creates a Printer for w. In auto mode the color profile is
// detected from w, so pipes and buffers get plain text.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w: w,
		// Bold yellow, the same "1;33" the stand-alone scripts printed.
		finished: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		pass:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		fail:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// StatusLine renders the single line describing res.
func (p *Printer) StatusLine(res *bench.Result) string {
	if res.Err != nil {
		return fmt.Sprintf("%s %s: %v", p.fail.Render("ERROR"), res.Name, res.Err)
	}

	var b strings.Builder
	b.WriteString(p.finished.Render(fmt.Sprintf("Finished %s in %s", res.Name, res.Unit.Format(res.Elapsed))))
	if res.Runs > 1 {
		fmt.Fprintf(&b, " (min %s, mean %s over %d runs)", res.Unit.Format(res.Min), res.Unit.Format(res.Mean), res.Runs)
	}

	if res.Passed {
		fmt.Fprintf(&b, " %s fib(%d) = %d", p.pass.Render("PASS"), res.N, res.Got)
	} else {
		fmt.Fprintf(&b, " %s fib(%d) = %d, expected %d", p.fail.Render("FAIL"), res.N, res.Got, res.Expect)
	}
	return b.String()
}

// Print writes one status line per result.
func (p *Printer) Print(results []*bench.Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(p.w, p.StatusLine(res)); err != nil {
			return err
		}
	}
	return nil
}
