package payroll

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payroll-demo/internal/application/dto"
	"github.com/jhoicas/payroll-demo/internal/domain/entity"
	domainpayroll "github.com/jhoicas/payroll-demo/internal/domain/payroll"
)

// RunUseCase ejecuta la liquidación completa de un empleado e imprime cada valor derivado.
type RunUseCase struct {
	printer  Printer
	log      zerolog.Logger
	employee entity.Employee
}

// NewRunUseCase construye el caso de uso para el empleado indicado.
func NewRunUseCase(printer Printer, log zerolog.Logger, employee entity.Employee) *RunUseCase {
	return &RunUseCase{printer: printer, log: log, employee: employee}
}

// run acumula las líneas impresas y el primer error de escritura.
type run struct {
	printer Printer
	lines   int
	err     error
}

func (r *run) print(line string) {
	if r.err != nil {
		return
	}
	if err := r.printer.PrintLine(line); err != nil {
		r.err = fmt.Errorf("imprimir línea %d: %w", r.lines+1, err)
		return
	}
	r.lines++
}

func (r *run) printInt(n int) { r.print(strconv.Itoa(n)) }

func (r *run) printDecimal(d decimal.Decimal) { r.print(d.String()) }

// Run liquida la nómina y escribe la salida en el Printer.
// El empleado se copia: los incrementos finales no modifican al del caso de uso.
func (uc *RunUseCase) Run() (*dto.PayrollReport, error) {
	emp := uc.employee
	if err := domainpayroll.ValidateEmployee(emp); err != nil {
		return nil, fmt.Errorf("validar empleado: %w", err)
	}

	runID := uuid.New().String()
	log := uc.log.With().Str("run_id", runID).Logger()
	log.Info().Str("employee", emp.Name).Msg("iniciando liquidación")

	out := &run{printer: uc.printer}

	bonus := domainpayroll.CalculateBonus(emp)
	settlement := domainpayroll.Settle(emp.Salary, bonus, emp.TaxRate)
	out.print("Salario Neto: " + settlement.NetSalary.String())

	hasBonus := bonus.IsPositive()
	isEmployed := emp.Active

	yearSum := 0
	for year := domainpayroll.FirstYear; year <= domainpayroll.LastYear; year++ {
		yearSum += year
		out.printInt(year)
		for quarter := 1; quarter <= domainpayroll.QuartersShown; quarter++ {
			out.printInt(domainpayroll.QuarterlyEarning(year, quarter))
		}
	}

	for month := 1; month <= domainpayroll.MonthsShown; month++ {
		out.printInt(domainpayroll.DaysInMonth(month))
		for week := 1; week <= domainpayroll.WeeksPerMonth; week++ {
			out.printInt(domainpayroll.WeekHours(week))
		}
	}

	productivity := domainpayroll.CalculateProductivity(emp)

	for period := 1; period <= domainpayroll.Periods; period++ {
		out.printInt(period)
		for day := 1; day <= domainpayroll.DaysPerPeriod; day++ {
			hours := domainpayroll.DayHours(day)
			out.printInt(hours)
			out.print(domainpayroll.HoursLabel(hours))
		}
	}

	avgDaily, err := domainpayroll.AverageDaily(settlement.NetSalary, emp.DaysWorked)
	if err != nil {
		return nil, fmt.Errorf("promedio diario: %w", err)
	}
	emp.Age++
	emp.DaysWorked--

	tier := domainpayroll.SalaryTier(settlement.NetSalary)
	out.print(tier)
	out.print(emp.Name)
	out.printDecimal(settlement.NetSalary)
	out.printDecimal(avgDaily)

	if out.err != nil {
		log.Error().Err(out.err).Int("lines", out.lines).Msg("salida interrumpida")
		return nil, out.err
	}

	log.Debug().
		Str("bonus", bonus.String()).
		Str("productivity", productivity.String()).
		Bool("has_bonus", hasBonus).
		Bool("is_employed", isEmployed).
		Int("year_sum", yearSum).
		Msg("valores internos")
	log.Info().Int("lines", out.lines).Str("tier", tier).Msg("liquidación finalizada")

	return &dto.PayrollReport{
		RunID:           runID,
		Name:            emp.Name,
		Bonus:           bonus,
		FinalSalary:     settlement.FinalSalary,
		Tax:             settlement.Tax,
		NetSalary:       settlement.NetSalary,
		HasBonus:        hasBonus,
		IsEmployed:      isEmployed,
		YearSum:         yearSum,
		Productivity:    productivity,
		AverageDaily:    avgDaily,
		Tier:            tier,
		AgeAfter:        emp.Age,
		DaysWorkedAfter: emp.DaysWorked,
		Lines:           out.lines,
	}, nil
}
