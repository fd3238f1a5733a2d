package ports

import "github.com/google/uuid"

// IDGenerator define el puerto de generación de identificadores para
// productos, gastos y planes de prueba. Inyectable para tests deterministas.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapta una función a IDGenerator.
type IDFunc func() string

// NewID implementa IDGenerator.
func (f IDFunc) NewID() string { return f() }

// UUIDGenerator generador de producción (UUID v4).
func UUIDGenerator() IDGenerator { return IDFunc(uuid.NewString) }
