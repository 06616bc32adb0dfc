// Package pdf implementa la generación del albarán de entrega (remisión) de
// los documentos de salida del almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Almacén de origen  │  N° Albarán + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTINATARIO: nombre del cliente                           │
//	│  ORIGEN: bodega / ubicación                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Unidad | Cantidad                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: recibido por / firma                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// DeliveryNoteGenerator implementa usecase.DeliveryNotePDFGenerator con Maroto v2.
type DeliveryNoteGenerator struct{}

// NewDeliveryNoteGenerator construye el generador.
func NewDeliveryNoteGenerator() *DeliveryNoteGenerator { return &DeliveryNoteGenerator{} }

// GenerateDeliveryNotePDF genera el PDF del albarán y devuelve sus bytes.
func (g *DeliveryNoteGenerator) GenerateDeliveryNotePDF(
	_ context.Context,
	data *usecase.DeliveryNoteData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Albarán de Entrega", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(destinatarioRow(data.Document))
	m.AddRows(origenRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar albarán: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: almacén de origen (izq) y número + fecha del albarán (der).
func headerRow(data *usecase.DeliveryNoteData) core.Row {
	numero := fmt.Sprintf("ALB-%06d", data.Document.ID)
	fecha := data.Document.CreatedAt.Format("02/01/2006")
	if data.Document.ValidatedAt != nil {
		fecha = data.Document.ValidatedAt.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.WarehouseName, "Almacén"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+nonEmpty(data.WarehouseCode, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ALBARÁN DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// destinatarioRow: cliente que recibe la mercancía.
func destinatarioRow(doc *entity.Document) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DESTINATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.CustomerName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// origenRow: bodega y ubicación de las que sale la mercancía.
func origenRow(data *usecase.DeliveryNoteData) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("ORIGEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Bodega: %s   |   Ubicación: %s (%s)",
				nonEmpty(data.WarehouseName, "—"),
				nonEmpty(data.LocationName, "—"),
				nonEmpty(data.LocationCode, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Unidad", 2, align.Center),
		h("Cantidad", 2, align.Right),
	)
}

// tableLineRows: una fila por línea del albarán.
func tableLineRows(lines []usecase.DeliveryNoteLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.UnitMeasure,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRows: espacio de firma del receptor.
func footerRows() []core.Row {
	return []core.Row{
		row.New(10),
		row.New(12).Add(
			col.New(6).Add(
				text.New("Recibido por: ______________________________", props.Text{
					Size: 9, Top: 4,
				}),
			),
			col.New(6).Add(
				text.New("Firma y fecha: _____________________________", props.Text{
					Size: 9, Top: 4,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Este albarán acredita la salida de la mercancía relacionada. "+
					"Cualquier reclamación debe notificarse dentro de las 48 horas siguientes a la recepción.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
