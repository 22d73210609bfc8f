package entity

import "github.com/shopspring/decimal"

// CartItem es una línea del carrito: un producto y la cantidad pedida.
// Quantity siempre es >= 1; una línea con cantidad 0 se elimina, no se conserva.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// NewCartItem crea la línea inicial (cantidad 1) para un producto.
func NewCartItem(p Product) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Image:     p.Image,
	}
}

// Subtotal = UnitPrice × Quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
