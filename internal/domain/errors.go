package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrStorage           = errors.New("falha de armazenamento")
)

// ValidationError describe una entrada mal formada. Cumple errors.Is(err, ErrInvalidInput).
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError construye el error para el campo indicado.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// InsufficientStockError una salida pide más unidades de las disponibles.
// Lleva ambos valores para que el cliente muestre un mensaje preciso.
type InsufficientStockError struct {
	ProductID int64
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: disponível %d, solicitado %d", ErrInsufficientStock, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// StorageError envuelve fallas del motor de base de datos (conexión, constraints).
// errors.Is(err, ErrStorage) es verdadero y errors.Unwrap devuelve el error del driver.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrStorage) además de comparar contra el error original.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// AsStorage envuelve err como StorageError salvo que ya sea un error de dominio conocido.
func AsStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrStorage) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
