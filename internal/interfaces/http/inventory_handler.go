package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// InventoryHandler maneja el ajuste libre de stock y las consultas del libro
// de movimientos.
type InventoryHandler struct {
	adjustUC *inventory.AdjustStockUseCase
	queryUC  *inventory.MovementQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustUC *inventory.AdjustStockUseCase, queryUC *inventory.MovementQueryUseCase) *InventoryHandler {
	return &InventoryHandler{adjustUC: adjustUC, queryUC: queryUC}
}

// Adjust aplica un delta con signo al stock de un producto, sin documento.
// POST /api/inventory/adjustments
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	level, err := h.adjustUC.Adjust(c.Context(), in.ProductID, in.Delta, GetUserID(c), in.Reason)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.StockLevelResponse{
		ProductID:      level.ProductID,
		WarehouseID:    level.WarehouseID,
		LocationID:     level.LocationID,
		QuantityOnHand: level.QuantityOnHand,
		UpdatedAt:      level.UpdatedAt,
	})
}

// ListMoves historial de movimientos, global o por producto.
// GET /api/inventory/moves?product_id=&limit=&offset=
func (h *InventoryHandler) ListMoves(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	productID := c.QueryInt("product_id", 0)
	var (
		moves []dto.StockMoveResponse
		err   error
	)
	if productID > 0 {
		moves, err = h.queryUC.ListByProduct(int64(productID), page.Limit, page.Offset)
	} else {
		moves, err = h.queryUC.ListRecent(page.Limit, page.Offset)
	}
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(moves)
}

// ListDocumentMoves movimientos generados por un documento.
// GET /api/documents/:id/moves
func (h *InventoryHandler) ListDocumentMoves(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	moves, err := h.queryUC.ListByDocument(int64(id))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(moves)
}
