package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

// mapConstraint traduce violaciones de constraint a errores de dominio:
// FK (producto borrado en paralelo) -> ErrNotFound; CHECK (nombre vacío, negativos) -> ValidationError.
// Devuelve nil si err no es una violación conocida.
func mapConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		return domain.ErrNotFound
	case sqlite3.ErrConstraintCheck:
		return domain.NewValidationError("", "viola uma restrição da tabela")
	}
	return nil
}
