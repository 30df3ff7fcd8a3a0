package explain

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

type painter interface {
	paint(tone Tone, s string) string
	title(s string) string
}

type plainPainter struct{}

func (plainPainter) paint(_ Tone, s string) string { return s }
func (plainPainter) title(s string) string         { return s }

type colorPainter struct {
	tones map[Tone]func(a ...interface{}) string
	bold  func(a ...interface{}) string
}

func newColorPainter() colorPainter {
	return colorPainter{
		tones: map[Tone]func(a ...interface{}) string{
			ToneDiabetic:    forced(color.FgRed),
			ToneNonDiabetic: forced(color.FgGreen),
			ToneHighlight:   forced(color.FgYellow, color.Bold),
		},
		bold: forced(color.FgCyan, color.Bold),
	}
}

// forced builds a color that ignores the global color.NoColor switch.
func forced(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

func (p colorPainter) paint(tone Tone, s string) string {
	if fn, ok := p.tones[tone]; ok {
		return fn(s)
	}
	return s
}

func (p colorPainter) title(s string) string {
	return p.bold(s)
}

// WriteText writes the explanation without terminal escapes.
func (e *Explanation) WriteText(w io.Writer) error {
	return e.render(w, plainPainter{})
}

// WriteColor writes the explanation with ANSI colors, whether or not w is a
// terminal.
func (e *Explanation) WriteColor(w io.Writer) error {
	return e.render(w, newColorPainter())
}

func (e *Explanation) render(w io.Writer, p painter) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", p.title(strings.ToUpper(string(e.Algorithm))))
	fmt.Fprintf(&buf, "%s\n\n", p.paint(ToneHighlight, e.Headline))
	fmt.Fprintf(&buf, "%s\n", p.title("Input"))
	for _, l := range e.Input {
		fmt.Fprintf(&buf, "  %s\n", p.paint(l.Tone, l.Text))
	}

	for _, s := range e.Sections {
		fmt.Fprintf(&buf, "\n%s\n", p.title(s.Title))
		for _, l := range s.Lines {
			fmt.Fprintf(&buf, "  %s\n", p.paint(l.Tone, l.Text))
		}
		if s.Table != nil {
			lines, err := tableLines(s.Table)
			if err != nil {
				return err
			}
			fmt.Fprintf(&buf, "  %s\n", lines[0])
			for i, row := range s.Table.Rows {
				tone := ToneNone
				if row.Nearest {
					tone = row.Tone
				}
				fmt.Fprintf(&buf, "  %s\n", p.paint(tone, lines[i+1]))
			}
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// tableLines aligns the table before painting, so escape codes do not
// disturb the column widths. Nearest rows are marked with '*'.
func tableLines(t *Table) ([]string, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, " \t%s\n", strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		mark := " "
		if row.Nearest {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\n", mark, strings.Join(row.Cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), nil
}
