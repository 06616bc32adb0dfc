package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// DocumentHandler maneja las peticiones HTTP para documentos de inventario:
// creación, consulta, validación y albarán de entrega.
type DocumentHandler struct {
	docUC      *usecase.DocumentUseCase
	validateUC *inventory.ValidateDocumentUseCase
	noteUC     *usecase.DeliveryNoteUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(
	docUC *usecase.DocumentUseCase,
	validateUC *inventory.ValidateDocumentUseCase,
	noteUC *usecase.DeliveryNoteUseCase,
) *DocumentHandler {
	return &DocumentHandler{docUC: docUC, validateUC: validateUC, noteUC: noteUC}
}

// Create crea un documento en READY con sus líneas. POST /api/documents
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.docUC.Create(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un documento con sus líneas. GET /api/documents/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.docUC.GetByID(int64(id))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List lista documentos de un tipo. GET /api/documents?type=RECEIPT&limit=&offset=
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	docType := c.Query("type")
	if docType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el parámetro type es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.docUC.ListByType(docType, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ValidateReceipt valida una recepción. POST /api/receipts/:id/validate
func (h *DocumentHandler) ValidateReceipt(c *fiber.Ctx) error {
	return h.validate(c, h.validateUC.ValidateReceipt)
}

// ValidateDelivery valida una entrega. POST /api/deliveries/:id/validate
func (h *DocumentHandler) ValidateDelivery(c *fiber.Ctx) error {
	return h.validate(c, h.validateUC.ValidateDelivery)
}

// ValidateAdjustment valida un documento de ajuste. POST /api/adjustments/:id/validate
func (h *DocumentHandler) ValidateAdjustment(c *fiber.Ctx) error {
	return h.validate(c, h.validateUC.ValidateAdjustment)
}

// DeliveryNote genera el PDF del albarán de una entrega.
// GET /api/deliveries/:id/note
func (h *DocumentHandler) DeliveryNote(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	pdf, filename, err := h.noteUC.Generate(c.Context(), int64(id))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// validate factoriza los tres endpoints de validación: mismo parseo de id,
// misma conversión de respuesta; solo cambia el caso de uso invocado.
func (h *DocumentHandler) validate(c *fiber.Ctx, fn func(ctx context.Context, documentID int64) (*entity.Document, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	doc, err := fn(c.Context(), int64(id))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(usecase.ToDocumentResponse(doc))
}
