package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para Document y sus líneas.
type DocumentRepository interface {
	// Create inserta el documento y todas sus líneas.
	Create(document *entity.Document) error
	// GetByID devuelve el documento con sus líneas, o nil si no existe.
	GetByID(id int64) (*entity.Document, error)
	// GetForUpdate devuelve el documento con sus líneas bloqueando la fila del
	// documento (SELECT FOR UPDATE). Dos validaciones concurrentes del mismo
	// documento se serializan sobre este lock: la segunda ve status=DONE.
	GetForUpdate(id int64) (*entity.Document, error)
	ListByType(docType string, limit, offset int) ([]*entity.Document, error)
	// MarkValidated fija status=DONE y estampa validated_at.
	MarkValidated(id int64, at time.Time) error
}
