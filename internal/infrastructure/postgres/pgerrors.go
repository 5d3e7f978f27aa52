package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

// Códigos SQLSTATE usados por los repositorios.
const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapConstraint traduce violaciones de constraint a errores de dominio:
// FK (producto borrado en paralelo) -> ErrNotFound; CHECK (stock o cantidades) y
// valores fuera del rango de la columna -> ErrInvalidInput.
// Devuelve nil si err no es una violación conocida.
func mapConstraint(err error) error {
	switch pgCode(err) {
	case codeForeignKeyViolation:
		return domain.ErrNotFound
	case codeCheckViolation:
		return domain.NewValidationError("", "viola uma restrição da tabela")
	case codeNumericOutOfRange:
		return domain.NewValidationError("", "valor fora do intervalo suportado")
	}
	return nil
}
