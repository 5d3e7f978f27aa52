package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// MovementHandler maneja el libro de movimientos.
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	list     *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, list *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{register: register, list: list}
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, kind (entrada|saida), quantity, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, domain.NewValidationError("", "corpo inválido"))
	}
	mov, err := h.register.RecordFromRequest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToMovementResponse(mov))
}

// List godoc
// @Summary      Listar movimientos (más reciente primero)
// @Tags         movements
// @Produce      json
// @Param        category    query  string  false  "Categoría"
// @Param        kind        query  string  false  "entrada|saida"
// @Param        month       query  int     false  "Mes 0-11"
// @Param        product_id  query  int     false  "Producto"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.list.List(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func movementFilterFromQuery(c *fiber.Ctx) (repository.MovementFilter, error) {
	f := repository.MovementFilter{Category: c.Query("category")}
	if k := c.Query("kind"); k != "" {
		kind, ok := entity.ParseMovementKind(k)
		if !ok {
			return f, domain.NewValidationError("kind", "deve ser entrada ou saida")
		}
		f.Kind = kind
	}
	month, err := monthFromQuery(c)
	if err != nil {
		return f, err
	}
	f.MonthIndex = month
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return f, domain.NewValidationError("product_id", "deve ser um inteiro positivo")
		}
		f.ProductID = id
	}
	return f, nil
}

// monthFromQuery lee ?month= (0-11); ausente o vacío → nil.
func monthFromQuery(c *fiber.Ctx) (*int, error) {
	raw := c.Query("month")
	if raw == "" {
		return nil, nil
	}
	m, err := strconv.Atoi(raw)
	if err != nil || m < 0 || m > 11 {
		return nil, domain.NewValidationError("month", "deve estar entre 0 e 11")
	}
	return &m, nil
}
