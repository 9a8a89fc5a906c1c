package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/dhamidi/gobble/format"
	"github.com/dhamidi/gobble/parse"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorOK    = lipgloss.Color("#10B981")
	colorMuted = lipgloss.Color("#6B7280")
)

// printer writes diagnostics and status lines, styled when colour is on.
type printer struct {
	w      io.Writer
	plain  bool
	header lipgloss.Style
	gutter lipgloss.Style
	caret  lipgloss.Style
	ok     lipgloss.Style
}

func newPrinter(w io.Writer, mode string) *printer {
	p := &printer{w: w}
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		p.plain = true
	default:
		p.plain = !isTerminal(w)
	}
	p.header = r.NewStyle().Bold(true).Foreground(colorError)
	p.gutter = r.NewStyle().Foreground(colorMuted)
	p.caret = r.NewStyle().Bold(true).Foreground(colorError)
	p.ok = r.NewStyle().Foreground(colorOK)
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

// Diagnostic prints err against src, prefixing the first line with name.
func (p *printer) Diagnostic(name, src string, err *parse.Error) {
	lines := strings.Split(strings.TrimSuffix(err.Render(src), "\n"), "\n")
	for i, line := range lines {
		bar := strings.Index(line, "|")
		switch {
		case i == 0 && name != "":
			line = p.style(p.header, name+": "+line)
		case strings.HasPrefix(line, "error at"), strings.HasPrefix(line, "caused by"):
			line = p.style(p.header, line)
		case bar < 0:
		case strings.TrimSpace(line[:bar]) == "":
			line = p.style(p.gutter, line[:bar+1]) + p.style(p.caret, line[bar+1:])
		default:
			line = p.style(p.gutter, line[:bar+1]) + line[bar+1:]
		}
		fmt.Fprintln(p.w, line)
	}
}

func (p *printer) OK(name string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(p.ok, "ok"), name)
}

// reportError writes err in the configured error format. Text goes to the
// printer, JSON to out.
func reportError(g *globals, p *printer, out io.Writer, name, src string, err *parse.Error) error {
	if g.cfg.ErrorFormat == "json" {
		if encErr := format.NewErrorJSONEncoder(out).Encode(err); encErr != nil {
			return fmt.Errorf("encode error: %w", encErr)
		}
		return errReported
	}
	p.Diagnostic(name, src, err)
	return errReported
}
