package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de entrega.
const (
	DeliveryHome   = "delivery"
	DeliveryPickup = "pickup"
)

// Métodos de pago (simulados, no se procesa ningún cobro).
const (
	PaymentMobileMoney = "mobile"
	PaymentCard        = "card"
	PaymentCash        = "cash"
)

// OrderStatusConfirmed es el único estado que produce el checkout simulado.
const OrderStatusConfirmed = "confirmed"

// Order es el pedido resultante de un checkout: una foto del carrito más los datos de entrega.
type Order struct {
	ID             string
	UserID         string
	Items          []CartItem
	Subtotal       decimal.Decimal // suma de líneas
	DeliveryFee    decimal.Decimal // 0 si es retiro en tienda
	Total          decimal.Decimal // Subtotal + DeliveryFee
	DeliveryMethod string
	PaymentMethod  string
	Address        string
	Phone          string
	Notes          string
	Status         string
	CreatedAt      time.Time
}

// ItemsCount suma las cantidades de todas las líneas del pedido.
func (o *Order) ItemsCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// ShortID primeros 8 caracteres del ID, como se muestran al cliente.
func (o *Order) ShortID() string {
	if len(o.ID) > 8 {
		return o.ID[:8]
	}
	return o.ID
}
