package widget

import (
	"io"
	"strings"
)

// Painter renders widgets as indented lines of text.
type Painter struct {
	out    strings.Builder
	line   strings.Builder
	indent int
}

// Word appends s to the current line, separated by a blank.
func (p *Painter) Word(s string) {
	if p.line.Len() > 0 {
		p.line.WriteByte(' ')
	}
	p.line.WriteString(s)
}

// Break ends the current line if it is not empty.
func (p *Painter) Break() {
	if p.line.Len() == 0 {
		return
	}
	p.out.WriteString(strings.Repeat("  ", p.indent))
	p.out.WriteString(p.line.String())
	p.out.WriteByte('\n')
	p.line.Reset()
}

func (p *Painter) Indent() { p.indent++ }

func (p *Painter) Dedent() {
	if p.indent > 0 {
		p.indent--
	}
}

// String returns what has been painted so far.
func (p *Painter) String() string {
	p.Break()
	return p.out.String()
}

// Paint writes the text picture of seq to w.
func Paint(w io.Writer, seq Seq) error {
	var p Painter
	for _, wd := range Flatten(seq) {
		wd.Paint(&p)
		p.Break()
	}
	_, err := io.WriteString(w, p.String())
	return err
}
