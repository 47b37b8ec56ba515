package payroll

// Printer recibe la salida de la liquidación, una línea a la vez y en orden.
type Printer interface {
	PrintLine(line string) error
}
