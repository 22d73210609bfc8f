package memory

import (
	"sync"

	"github.com/jhoicas/storefront-core/internal/domain/entity"
	"github.com/jhoicas/storefront-core/internal/domain/repository"
)

// OrderRepository historial de pedidos mientras vive el proceso.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*entity.Order
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, cloneOrder(order))
	return nil
}

// GetByID devuelve (nil, nil) si el pedido no existe.
func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, nil
}

// ListByUser pedidos del usuario, del más reciente al más antiguo.
func (r *OrderRepository) ListByUser(userID string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, cloneOrder(r.orders[i]))
		}
	}
	return out, nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = append([]entity.CartItem(nil), o.Items...)
	return &c
}
