package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNoDaysWorked = errors.New("el empleado no registra días trabajados")
)
