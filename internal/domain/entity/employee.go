package entity

import "github.com/shopspring/decimal"

// Employee representa al empleado cuya nómina se liquida.
// Salary y TaxRate usan decimal para no arrastrar errores de punto flotante en montos.
type Employee struct {
	Name          string
	Age           int
	Salary        decimal.Decimal // salario base
	Category      rune            // 'A', 'B', ...
	Active        bool
	DaysWorked    int
	TaxRate       decimal.Decimal // 0.15 = 15%
	TotalProjects int
}
