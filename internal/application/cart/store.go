package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-core/internal/application/dto"
	"github.com/jhoicas/storefront-core/internal/domain/entity"
	"github.com/jhoicas/storefront-core/pkg/logger"
)

// MaxQuantity tope de unidades por línea; cantidades mayores se recortan a este valor.
const MaxQuantity = 999

// Store carrito de compras en memoria durante la vida del proceso.
// Ninguna operación falla: un ID inexistente es un no-op.
// Cantidad total y total a pagar se derivan siempre de las líneas actuales.
type Store struct {
	mu    sync.Mutex
	items []entity.CartItem // orden de inserción
	log   *logger.Logger
}

// NewStore construye un carrito vacío. log puede ser nil.
func NewStore(log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{log: log.Component("cart")}
}

// AddToCart suma 1 a la línea del producto o agrega una línea nueva con cantidad 1.
func (s *Store) AddToCart(p entity.Product) {
	s.AddQuantity(p, 1)
}

// AddQuantity agrega n unidades del producto (pantalla de detalle). n <= 0 no hace nada.
func (s *Store) AddQuantity(p entity.Product, n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity = clamp(s.items[i].Quantity, n)
		s.log.Debug().Str("product_id", p.ID).Int("quantity", s.items[i].Quantity).Msg("cantidad incrementada")
		return
	}
	item := entity.NewCartItem(p)
	item.Quantity = clamp(0, n)
	s.items = append(s.items, item)
	s.log.Debug().Str("product_id", p.ID).Int("quantity", n).Msg("producto agregado")
}

// RemoveFromCart quita la línea del producto si existe.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(productID)
}

// UpdateQuantity fija la cantidad de la línea. quantity <= 0 equivale a RemoveFromCart.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.remove(productID)
		return
	}
	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity = clamp(0, quantity)
	}
}

// ClearCart vacía el carrito.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.log.Debug().Msg("carrito vaciado")
}

// ItemsCount suma de cantidades (0 con el carrito vacío).
func (s *Store) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

// Total suma de precio unitario × cantidad (0 con el carrito vacío).
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

// Items copia de las líneas en orden de inserción.
func (s *Store) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// IsEmpty indica si no hay líneas.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// Summary foto consistente de líneas y agregados.
func (s *Store) Summary() dto.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entity.CartItem, len(s.items))
	copy(items, s.items)
	return dto.CartSummary{Items: items, ItemsCount: s.count(), Total: s.total()}
}

// clamp suma n a current sin pasar de MaxQuantity. Ambos son >= 0.
func clamp(current, n int) int {
	if n > MaxQuantity-current {
		return MaxQuantity
	}
	return current + n
}

func (s *Store) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) remove(productID string) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.log.Debug().Str("product_id", productID).Msg("producto quitado")
}

func (s *Store) count() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) total() decimal.Decimal {
	t := decimal.Zero
	for _, it := range s.items {
		t = t.Add(it.Subtotal())
	}
	return t
}
