package payroll

import (
	"github.com/jhoicas/payroll-demo/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	productivityDaysMin     = 240 // estricto: más de 240 días
	productivityProjectsMin = 5   // estricto: más de 5 proyectos
	topCategory             = 'A'
)

var (
	productivityLow      = decimal.RequireFromString("0.80")
	productivityStandard = decimal.RequireFromString("0.90")
	productivityHigh     = decimal.RequireFromString("0.98")
	categoryAdjustUp     = decimal.RequireFromString("0.02")
	categoryAdjustDown   = decimal.RequireFromString("0.01")
)

// CalculateProductivity devuelve el puntaje de productividad en [0,1].
// Los umbrales son estrictos: 5 proyectos exactos no alcanzan el nivel alto.
func CalculateProductivity(e entity.Employee) decimal.Decimal {
	if e.DaysWorked <= productivityDaysMin {
		return productivityLow
	}
	if e.TotalProjects <= productivityProjectsMin {
		return productivityStandard
	}
	if e.Category == topCategory {
		return productivityHigh.Add(categoryAdjustUp)
	}
	return productivityHigh.Sub(categoryAdjustDown)
}
