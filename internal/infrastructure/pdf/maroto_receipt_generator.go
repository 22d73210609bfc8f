// Package pdf implementa el recibo PDF del pedido confirmado.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Tienda + "Pedido confirmado" │ Fecha  │
//	│  CLIENTE: Nombre / Teléfono / Dirección        │
//	│  ─────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal    │
//	│  ─────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Envío / TOTAL              │
//	│  FOOTER: QR con el ID del pedido + leyenda      │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/storefront-core/internal/application/checkout"
	"github.com/jhoicas/storefront-core/internal/domain/entity"
	"github.com/jhoicas/storefront-core/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 1, Green: 0, Blue: 128}  // azul oscuro de la app
	colorAccent  = &props.Color{Red: 255, Green: 215, Blue: 0} // amarillo dorado
	colorGray    = &props.Color{Red: 117, Green: 117, Blue: 117}
)

var paymentLabels = map[string]string{
	entity.PaymentMobileMoney: "Mobile Money",
	entity.PaymentCard:        "Tarjeta",
	entity.PaymentCash:        "Efectivo contra entrega",
}

var deliveryLabels = map[string]string{
	entity.DeliveryHome:   "Envío a domicilio",
	entity.DeliveryPickup: "Retiro en tienda",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa checkout.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
	amounts   *money.Formatter
}

var _ checkout.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(storeName string, f *money.Formatter) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{storeName: storeName, amounts: f}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	ctx context.Context,
	order *entity.Order,
	customer *entity.User,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pedido", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.8}))
	m.AddRows(customerRow(order, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.itemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(order))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReceiptGenerator) headerRow(order *entity.Order) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pedido confirmado", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° "+order.ShortID(), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func customerRow(order *entity.Order, customer *entity.User) core.Row {
	name := "—"
	if customer != nil {
		name = nonEmpty(customer.Name, "—")
	}
	return row.New(18).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(fmt.Sprintf("Tel: %s   |   %s", nonEmpty(order.Phone, "—"),
				deliveryLabels[order.DeliveryMethod]), props.Text{Size: 8, Top: 10, Color: colorGray}),
			text.New("Dirección: "+nonEmpty(order.Address, "—"), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Cant", 1, align.Center),
		h("Producto", 5, align.Left),
		h("P.Unit", 3, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func (g *MarotoReceiptGenerator) itemRows(items []entity.CartItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(g.amounts.Format(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.amounts.Format(it.Subtotal()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *MarotoReceiptGenerator) totalsRow(order *entity.Order) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:", 1),
			label("Envío:", 6),
			label("Pago:", 11),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 16}),
		),
		col.New(4).Add(
			value(g.amounts.Format(order.Subtotal), 1),
			value(g.amounts.Format(order.DeliveryFee), 6),
			value(nonEmpty(paymentLabels[order.PaymentMethod], order.PaymentMethod), 11),
			text.New(g.amounts.Format(order.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 16}),
		),
	)
}

func footerRow(order *entity.Order) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(order.ID, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Presente este código al recibir o retirar el pedido.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("La aplicación no realizó ningún cobro.", props.Text{
				Size: 7, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
