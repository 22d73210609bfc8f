package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-core/internal/domain/entity"
)

// CartSummary foto del carrito para pintar en pantalla: líneas y agregados derivados.
type CartSummary struct {
	Items      []entity.CartItem `json:"items"`
	ItemsCount int               `json:"items_count"`
	Total      decimal.Decimal   `json:"total"`
}

// ErrorResponse mensaje de error a mostrar tal cual al usuario.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
