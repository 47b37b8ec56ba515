package dto

import "github.com/shopspring/decimal"

// PayrollReport resumen de una ejecución de la liquidación.
// Incluye los valores que se calculan pero no se imprimen (bandera de bono, productividad, suma de años).
type PayrollReport struct {
	RunID           string
	Name            string
	Bonus           decimal.Decimal
	FinalSalary     decimal.Decimal
	Tax             decimal.Decimal
	NetSalary       decimal.Decimal
	HasBonus        bool
	IsEmployed      bool
	YearSum         int
	Productivity    decimal.Decimal
	AverageDaily    decimal.Decimal
	Tier            string
	AgeAfter        int // edad tras el incremento final
	DaysWorkedAfter int // días tras el decremento final
	Lines           int // líneas impresas
}
