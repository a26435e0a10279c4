package output

import (
	"fmt"
	"io"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	indent        string
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a word, adding a space separator or wrapping as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// writeField writes a "label: value" line.
func (o *OutputWriter) writeField(label string, value interface{}) {
	o.WriteNoSpace(fmt.Sprintf("%-14s %v", label+":", value))
	o.NewLine()
}

// WriteReportText writes a report in human readable form, followed by a
// blank line.
func WriteReportText(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}
	ow := NewOutputWriter(ew, 80, "               ")

	if r.Input != "" {
		ow.writeField("Input", r.Input)
	}
	if r.Error != "" {
		ow.writeField("Error", r.Error)
		ow.NewLine()
		return ew.err
	}

	ow.writeField("FEN", r.FEN)
	if r.Board != "" {
		ow.WriteNoSpace(r.Board)
	}
	ow.writeField("Side to move", r.SideToMove)
	status := r.Status
	if r.DrawReason != "" {
		status += " (" + r.DrawReason + ")"
	}
	ow.writeField("Status", status)
	ow.writeField("Material", fmt.Sprintf("%+d", r.Material))
	if len(r.History) > 0 {
		ow.WriteNoSpace(fmt.Sprintf("%-14s", "Played:"))
		for _, m := range r.History {
			ow.Write(m)
		}
		ow.NewLine()
	}
	if r.Moves != nil {
		ow.WriteNoSpace(fmt.Sprintf("%-14s", fmt.Sprintf("Moves (%d):", len(r.Moves))))
		for _, m := range r.Moves {
			if m.Notation != "" {
				ow.Write(m.Notation)
			} else {
				ow.Write(m.UCI)
			}
		}
		ow.NewLine()
	}
	ow.NewLine()
	return ew.err
}

// errWriter keeps the first write error so the formatting code can ignore it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
