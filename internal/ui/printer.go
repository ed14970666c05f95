package ui

import (
	"fmt"
	"io"
)

// Printer writes command results: confirmations and listings to out,
// failures to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	outT   Theme
	errT   Theme
}

func NewPrinter(out, errOut io.Writer, mode ColorMode) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		outT:   NewTheme(rendererFor(out, mode)),
		errT:   NewTheme(rendererFor(errOut, mode)),
	}
}

// Theme returns the styles used for standard output.
func (p *Printer) Theme() Theme { return p.outT }

func (p *Printer) OK(msg string)   { fmt.Fprintln(p.out, p.outT.Success.Render(msg)) }
func (p *Printer) Fail(msg string) { fmt.Fprintln(p.errOut, p.errT.Error.Render(msg)) }
func (p *Printer) Info(msg string) { fmt.Fprintln(p.out, p.outT.Muted.Render(msg)) }

// Plain writes s untouched.
func (p *Printer) Plain(s string) { fmt.Fprint(p.out, s) }

// Task prints one listing line, "[n] text". Only the marker is styled.
func (p *Printer) Task(pos int, text string) {
	fmt.Fprintln(p.out, p.outT.Accent.Render(fmt.Sprintf("[%d]", pos))+" "+text)
}
