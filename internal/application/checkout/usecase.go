package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-core/internal/application/dto"
	"github.com/jhoicas/storefront-core/internal/domain"
	"github.com/jhoicas/storefront-core/internal/domain/entity"
	"github.com/jhoicas/storefront-core/internal/domain/repository"
	"github.com/jhoicas/storefront-core/pkg/logger"
	"github.com/jhoicas/storefront-core/pkg/validation"
)

// Config reglas del checkout.
type Config struct {
	DeliveryFee decimal.Decimal // costo del envío a domicilio; el retiro en tienda es gratis
}

// UseCase checkout simulado: arma el pedido desde el carrito, lo guarda en el
// historial y vacía el carrito. No se procesa ningún pago.
type UseCase struct {
	session   SessionReader
	cart      CartStore
	orders    repository.OrderRepository
	receipts  ReceiptGenerator
	cfg       Config
	validator *validation.Validator
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso. receipts y log pueden ser nil.
func NewUseCase(
	session SessionReader,
	cart CartStore,
	orders repository.OrderRepository,
	receipts ReceiptGenerator,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		session:   session,
		cart:      cart,
		orders:    orders,
		receipts:  receipts,
		cfg:       cfg,
		validator: validation.New(),
		log:       log.Component("checkout"),
		now:       time.Now,
	}
}

// DeliveryFee costo de envío para el método indicado.
func (uc *UseCase) DeliveryFee(method string) decimal.Decimal {
	if method == entity.DeliveryPickup {
		return decimal.Zero
	}
	return uc.cfg.DeliveryFee
}

// PlaceOrder confirma el pedido.
//
// Retorna:
//   - domain.ErrNotAuthenticated  si no hay sesión.
//   - domain.ErrEmptyCart         si el carrito está vacío.
//   - *domain.ValidationError     si falta la dirección (envío) o el teléfono.
func (uc *UseCase) PlaceOrder(ctx context.Context, in dto.CheckoutRequest) (*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	user := uc.session.User()
	if user == nil {
		return nil, fmt.Errorf("confirmar pedido: %w", domain.ErrNotAuthenticated)
	}
	summary := uc.cart.Summary()
	if len(summary.Items) == 0 {
		return nil, fmt.Errorf("confirmar pedido: %w", domain.ErrEmptyCart)
	}

	in.Normalize()
	if in.DeliveryMethod == "" {
		in.DeliveryMethod = entity.DeliveryHome
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentMobileMoney
	}
	if in.Address == "" {
		in.Address = user.Address
	}
	if in.Phone == "" {
		in.Phone = user.Phone
	}
	if details := uc.validator.Struct(in); details != nil {
		return nil, domain.NewValidationError(details)
	}
	if in.DeliveryMethod == entity.DeliveryPickup {
		in.Address = ""
	}

	fee := uc.DeliveryFee(in.DeliveryMethod)
	order := &entity.Order{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		Items:          summary.Items,
		Subtotal:       summary.Total,
		DeliveryFee:    fee,
		Total:          summary.Total.Add(fee),
		DeliveryMethod: in.DeliveryMethod,
		PaymentMethod:  in.PaymentMethod,
		Address:        in.Address,
		Phone:          in.Phone,
		Notes:          in.Notes,
		Status:         entity.OrderStatusConfirmed,
		CreatedAt:      uc.now(),
	}
	if err := uc.orders.Create(order); err != nil {
		uc.log.Error().Err(err).Str("order_id", order.ID).Msg("guardar pedido")
		return nil, fmt.Errorf("confirmar pedido: %w", domain.ErrPersistence)
	}
	uc.cart.ClearCart()

	uc.log.Info().
		Str("order_id", order.ID).
		Str("user_id", user.ID).
		Int("items", order.ItemsCount()).
		Str("total", order.Total.StringFixed(2)).
		Msg("pedido confirmado")
	return order, nil
}

// Orders historial del usuario autenticado, del más reciente al más antiguo.
func (uc *UseCase) Orders() ([]*entity.Order, error) {
	user := uc.session.User()
	if user == nil {
		return nil, fmt.Errorf("listar pedidos: %w", domain.ErrNotAuthenticated)
	}
	return uc.orders.ListByUser(user.ID)
}

// Receipt genera el PDF del pedido y propone un nombre de archivo.
// Un pedido de otro usuario se reporta como inexistente.
func (uc *UseCase) Receipt(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	if uc.receipts == nil {
		return nil, "", errors.New("recibo: generador no configurado")
	}
	user := uc.session.User()
	if user == nil {
		return nil, "", fmt.Errorf("recibo: %w", domain.ErrNotAuthenticated)
	}
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener pedido: %w", err)
	}
	if order == nil || order.UserID != user.ID {
		return nil, "", fmt.Errorf("recibo: pedido %q: %w", orderID, domain.ErrNotFound)
	}
	pdfBytes, err = uc.receipts.GenerateReceiptPDF(ctx, order, user)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido-%s.pdf", order.ShortID()), nil
}
