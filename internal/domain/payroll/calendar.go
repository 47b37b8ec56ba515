package payroll

// Rangos de los recorridos de la demo (ambos extremos inclusive).
const (
	FirstYear     = 2020
	LastYear      = 2024
	QuartersShown = 2
	MonthsShown   = 4
	WeeksPerMonth = 4
	Periods       = 2
	DaysPerPeriod = 3
)

const (
	hoursPerWeek = 40
	hoursPerDay  = 8
)

// Etiquetas de jornada.
const (
	LabelOvertime = "Horas extras"
	LabelNormal   = "Horas normales"
)

// QuarterlyEarning producto año × trimestre.
func QuarterlyEarning(year, quarter int) int {
	return year * quarter
}

// DaysInMonth días asignados a cada mes: febrero 28, abril 30, el resto 31.
// No sigue el calendario real (junio, septiembre y noviembre también devuelven 31).
func DaysInMonth(month int) int {
	switch month {
	case 2:
		return 28
	case 4:
		return 30
	default:
		return 31
	}
}

// WeekHours horas acumuladas hasta la semana indicada (40 por semana).
func WeekHours(week int) int { return week * hoursPerWeek }

// DayHours horas de la jornada indicada (8 por día).
func DayHours(day int) int { return day * hoursPerDay }

// IsOvertime indica si la jornada supera las 8 horas.
func IsOvertime(hours int) bool {
	return hours > hoursPerDay
}

// HoursLabel etiqueta de la jornada según IsOvertime.
func HoursLabel(hours int) string {
	if IsOvertime(hours) {
		return LabelOvertime
	}
	return LabelNormal
}
