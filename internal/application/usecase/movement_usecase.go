package usecase

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// MovementUseCase lectura del libro de movimientos. La escritura vive en inventory.RegisterMovementUseCase.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List devuelve los movimientos filtrados, del más reciente al más antiguo.
func (uc *MovementUseCase) List(ctx context.Context, filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	movements, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.AsStorage("listar movimientos", err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// ToMovementResponse convierte la entidad al formato de la API (fecha dd/mm/aaaa).
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Category:    m.Category,
		Kind:        string(m.Kind),
		Quantity:    m.Quantity,
		Date:        m.Date.Format(dto.MovementDateLayout),
		MonthIndex:  m.MonthIndex,
		Reason:      m.Reason,
		TotalValue:  m.TotalValue,
	}
}
