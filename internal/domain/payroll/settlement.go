package payroll

import (
	"github.com/jhoicas/payroll-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// Etiquetas de nivel salarial.
const (
	TierHigh     = "Salario alto"
	TierModerate = "Salario moderado"
)

var highSalaryThreshold = decimal.NewFromInt(35000)

// Settlement liquidación de un periodo: salario con bono, impuesto y neto.
type Settlement struct {
	FinalSalary decimal.Decimal
	Tax         decimal.Decimal
	NetSalary   decimal.Decimal
}

// Settle calcula FinalSalary = salario + bono, Tax = FinalSalary * tasa y NetSalary = FinalSalary - Tax.
func Settle(salary, bonus, taxRate decimal.Decimal) Settlement {
	final := salary.Add(bonus)
	tax := final.Mul(taxRate)
	return Settlement{
		FinalSalary: final,
		Tax:         tax,
		NetSalary:   final.Sub(tax),
	}
}

// AverageDaily divide el neto entre los días trabajados.
func AverageDaily(net decimal.Decimal, daysWorked int) (decimal.Decimal, error) {
	if daysWorked <= 0 {
		return decimal.Zero, domain.ErrNoDaysWorked
	}
	return net.Div(decimal.NewFromInt(int64(daysWorked))), nil
}

// SalaryTier clasifica el salario neto.
func SalaryTier(net decimal.Decimal) string {
	if net.GreaterThan(highSalaryThreshold) {
		return TierHigh
	}
	return TierModerate
}
