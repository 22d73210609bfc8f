package checkout

import (
	"context"

	"github.com/jhoicas/storefront-core/internal/application/dto"
	"github.com/jhoicas/storefront-core/internal/domain/entity"
)

// SessionReader lo que el checkout necesita de la sesión.
type SessionReader interface {
	User() *entity.User
}

// CartStore lo que el checkout necesita del carrito.
type CartStore interface {
	Summary() dto.CartSummary
	ClearCart()
}

// ReceiptGenerator puerto de salida para el recibo PDF del pedido.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, customer *entity.User) ([]byte, error)
}
