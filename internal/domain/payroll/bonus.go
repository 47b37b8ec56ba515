package payroll

import (
	"github.com/jhoicas/payroll-demo/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	adultAge             = 18
	fullYearDays         = 240 // días mínimos para la bonificación completa
	projectBonusMinCount = 3   // estricto: más de 3 proyectos
)

var (
	bonusSalaryThreshold = decimal.NewFromInt(40000)

	rateFullYear     = decimal.RequireFromString("0.10")
	rateManyProjects = decimal.RequireFromString("0.05")
	rateFewProjects  = decimal.RequireFromString("0.02")
	ratePartialYear  = decimal.RequireFromString("0.05")
	rateLowSalary    = decimal.RequireFromString("0.03")
)

// CalculateBonus aplica las reglas escalonadas de bonificación sobre el salario base.
//
//	edad < 18                          -> 0
//	salario <= 40000                   -> 3%
//	días < 240                         -> 5%
//	días >= 240 y proyectos > 3        -> 10% + 5%
//	días >= 240 y proyectos <= 3       -> 10% + 2%
func CalculateBonus(e entity.Employee) decimal.Decimal {
	if e.Age < adultAge {
		return decimal.Zero
	}
	if !e.Salary.GreaterThan(bonusSalaryThreshold) {
		return e.Salary.Mul(rateLowSalary)
	}
	if e.DaysWorked < fullYearDays {
		return e.Salary.Mul(ratePartialYear)
	}
	bonus := e.Salary.Mul(rateFullYear)
	if e.TotalProjects > projectBonusMinCount {
		return bonus.Add(e.Salary.Mul(rateManyProjects))
	}
	return bonus.Add(e.Salary.Mul(rateFewProjects))
}
