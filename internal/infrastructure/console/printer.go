package console

import (
	"fmt"
	"io"
)

// Printer escribe cada línea en el writer (stdout en producción) seguida de salto de línea.
type Printer struct {
	w io.Writer
}

// NewPrinter construye el printer sobre w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintLine implementa payroll.Printer.
func (p *Printer) PrintLine(line string) error {
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}
