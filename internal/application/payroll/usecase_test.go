package payroll_test

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	apppayroll "github.com/jhoicas/payroll-demo/internal/application/payroll"
	"github.com/jhoicas/payroll-demo/internal/domain"
	domainpayroll "github.com/jhoicas/payroll-demo/internal/domain/payroll"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingPrinter guarda las líneas en memoria; falla a partir de failAt si es > 0.
type recordingPrinter struct {
	lines  []string
	failAt int
}

var errBrokenPipe = errors.New("broken pipe")

func (p *recordingPrinter) PrintLine(line string) error {
	if p.failAt > 0 && len(p.lines)+1 >= p.failAt {
		return errBrokenPipe
	}
	p.lines = append(p.lines, line)
	return nil
}

// expectedOutput reconstruye la salida completa para el empleado por defecto.
func expectedOutput() []string {
	out := []string{"Salario Neto: 48875.733125"}
	for year := 2020; year <= 2024; year++ {
		out = append(out, strconv.Itoa(year), strconv.Itoa(year), strconv.Itoa(year*2))
	}
	for _, days := range []string{"31", "28", "31", "30"} {
		out = append(out, days, "40", "80", "120", "160")
	}
	for _, period := range []string{"1", "2"} {
		out = append(out, period,
			"8", "Horas normales",
			"16", "Horas extras",
			"24", "Horas extras",
		)
	}
	return append(out,
		"Salario alto",
		"Sistema Avanzado",
		"48875.733125",
		"195.5029325",
	)
}

func TestRun_SalidaExacta(t *testing.T) {
	printer := &recordingPrinter{}
	uc := apppayroll.NewRunUseCase(printer, zerolog.Nop(), domainpayroll.DefaultEmployee())

	report, err := uc.Run()
	require.NoError(t, err)

	if diff := cmp.Diff(expectedOutput(), printer.lines); diff != "" {
		t.Errorf("salida inesperada (-want +got):\n%s", diff)
	}
	assert.Equal(t, 54, report.Lines)
	assert.Len(t, printer.lines, report.Lines)
}

func TestRun_Reporte(t *testing.T) {
	uc := apppayroll.NewRunUseCase(&recordingPrinter{}, zerolog.Nop(), domainpayroll.DefaultEmployee())

	report, err := uc.Run()
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "Sistema Avanzado", report.Name)
	assert.Equal(t, "7500.1125", report.Bonus.String())
	assert.Equal(t, "57500.8625", report.FinalSalary.String())
	assert.Equal(t, "8625.129375", report.Tax.String())
	assert.Equal(t, "48875.733125", report.NetSalary.String())
	assert.Equal(t, "195.5029325", report.AverageDaily.String())
	assert.Equal(t, "0.9", report.Productivity.String())
	assert.True(t, report.HasBonus)
	assert.True(t, report.IsEmployed)
	assert.Equal(t, 2020+2021+2022+2023+2024, report.YearSum)
	assert.Equal(t, domainpayroll.TierHigh, report.Tier)
	assert.Equal(t, 26, report.AgeAfter)
	assert.Equal(t, 249, report.DaysWorkedAfter)
}

func TestRun_EsRepetible(t *testing.T) {
	emp := domainpayroll.DefaultEmployee()
	first := &recordingPrinter{}
	second := &recordingPrinter{}

	r1, err := apppayroll.NewRunUseCase(first, zerolog.Nop(), emp).Run()
	require.NoError(t, err)
	uc := apppayroll.NewRunUseCase(second, zerolog.Nop(), emp)
	_, err = uc.Run()
	require.NoError(t, err)
	r3, err := uc.Run()
	require.NoError(t, err)

	assert.Equal(t, first.lines, second.lines[:len(first.lines)])
	assert.Equal(t, r1.AgeAfter, r3.AgeAfter, "el empleado del caso de uso no se modifica entre ejecuciones")
	assert.NotEqual(t, r1.RunID, r3.RunID)
}

func TestRun_ErrorDeEscritura(t *testing.T) {
	printer := &recordingPrinter{failAt: 3}
	uc := apppayroll.NewRunUseCase(printer, zerolog.Nop(), domainpayroll.DefaultEmployee())

	report, err := uc.Run()
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, errBrokenPipe)
	assert.Len(t, printer.lines, 2, "no se escribe nada después del primer fallo")
}

func TestRun_EmpleadoInactivoMenorDeEdad(t *testing.T) {
	emp := domainpayroll.DefaultEmployee()
	emp.Active = false
	emp.Age = 10
	printer := &recordingPrinter{}

	report, err := apppayroll.NewRunUseCase(printer, zerolog.Nop(), emp).Run()
	require.NoError(t, err)

	assert.False(t, report.IsEmployed)
	assert.False(t, report.HasBonus)
	assert.True(t, report.Bonus.IsZero())
	assert.Equal(t, "42500.6375", report.NetSalary.String())
	assert.Equal(t, "170.00255", report.AverageDaily.String())
	assert.Equal(t, 11, report.AgeAfter)
	require.NotEmpty(t, printer.lines)
	assert.Equal(t, "Salario Neto: 42500.6375", printer.lines[0])
	assert.Equal(t, domainpayroll.TierHigh, printer.lines[len(printer.lines)-4])
}

func TestRun_EmpleadoSinDias(t *testing.T) {
	emp := domainpayroll.DefaultEmployee()
	emp.DaysWorked = 0
	printer := &recordingPrinter{}

	_, err := apppayroll.NewRunUseCase(printer, zerolog.Nop(), emp).Run()
	assert.ErrorIs(t, err, domain.ErrNoDaysWorked)
	assert.Empty(t, printer.lines)
}

func TestRun_LogIncluyeRunID(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	report, err := apppayroll.NewRunUseCase(&recordingPrinter{}, log, domainpayroll.DefaultEmployee()).Run()
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, `"run_id":"`+report.RunID+`"`)
	assert.Contains(t, logs, `"productivity":"0.9"`)
	assert.Contains(t, logs, `"year_sum":10110`)
	assert.Contains(t, logs, "liquidación finalizada")
}
