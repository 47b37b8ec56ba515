package payroll

import (
	"fmt"

	"github.com/jhoicas/payroll-demo/internal/domain"
	"github.com/jhoicas/payroll-demo/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultEmployee devuelve el empleado fijo que liquida la demo.
func DefaultEmployee() entity.Employee {
	return entity.Employee{
		Name:          "Sistema Avanzado",
		Age:           25,
		Salary:        decimal.RequireFromString("50000.75"),
		Category:      'A',
		Active:        true,
		DaysWorked:    250,
		TaxRate:       decimal.RequireFromString("0.15"),
		TotalProjects: 5,
	}
}

// ValidateEmployee verifica que los datos permitan liquidar sin divisiones por cero
// ni montos negativos.
func ValidateEmployee(e entity.Employee) error {
	if e.Salary.IsNegative() {
		return fmt.Errorf("%w: salario negativo %s", domain.ErrInvalidInput, e.Salary)
	}
	if e.TaxRate.IsNegative() || e.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tasa de impuesto fuera de [0,1]: %s", domain.ErrInvalidInput, e.TaxRate)
	}
	if e.DaysWorked <= 0 {
		return domain.ErrNoDaysWorked
	}
	return nil
}
