package inventory

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// RecordFromRequest adapta el request HTTP al motor Record(ctx, RecordMovementInput).
// Aquí se normalizan los valores del cliente: tipo cerrado, cantidad entera y positiva.
func (uc *RegisterMovementUseCase) RecordFromRequest(ctx context.Context, in dto.CreateMovementRequest) (*entity.Movement, error) {
	productID, err := in.ProductID.Int64("product_id", 0)
	if err != nil {
		return nil, err
	}
	if productID <= 0 {
		return nil, domain.NewValidationError("product_id", "é obrigatório")
	}
	kind, ok := entity.ParseMovementKind(in.Kind)
	if !ok {
		return nil, domain.NewValidationError("kind", "deve ser entrada ou saida")
	}
	qty, err := in.Quantity.Int("quantity", 0)
	if err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, domain.NewValidationError("quantity", "deve ser maior que zero")
	}
	return uc.Record(ctx, RecordMovementInput{
		ProductID: productID,
		Kind:      kind,
		Quantity:  qty,
		Reason:    in.Reason,
	})
}
