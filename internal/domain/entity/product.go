package entity

import "github.com/shopspring/decimal"

// Categorías del catálogo de ejemplo.
const (
	CategoryPromo        = "promo"
	CategoryAlimentation = "alimentation"
	CategoryBijoux       = "bijoux"
)

// Product representa un artículo del catálogo (datos de ejemplo, sin backend).
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal // precio de venta vigente, nunca negativo
	Discount int             // porcentaje de descuento mostrado; 0 = sin descuento
	Image    string
	Category string
	IsPromo  bool
}

// OriginalPrice es el precio antes del descuento: Price / (1 - Discount/100).
// Sin descuento devuelve Price.
func (p Product) OriginalPrice() decimal.Decimal {
	if p.Discount <= 0 || p.Discount >= 100 {
		return p.Price
	}
	factor := decimal.NewFromInt(100 - int64(p.Discount)).Div(decimal.NewFromInt(100))
	return p.Price.Div(factor).Round(2)
}

// Category agrupa productos bajo un título de vitrina.
type Category struct {
	ID    string
	Title string
}
