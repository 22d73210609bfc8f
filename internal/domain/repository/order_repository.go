package repository

import "github.com/jhoicas/storefront-core/internal/domain/entity"

// OrderRepository define el puerto de persistencia para los pedidos del checkout simulado.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string) ([]*entity.Order, error)
}
