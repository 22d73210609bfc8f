package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/storefront-core/internal/application/dto"
)

func (s *Shell) checkout(ctx context.Context, args []string) error {
	var in dto.CheckoutRequest
	if len(args) > 0 {
		in.DeliveryMethod = args[0]
	}
	if len(args) > 1 {
		in.PaymentMethod = args[1]
	}
	if len(args) > 2 {
		in.Notes = strings.Join(args[2:], " ")
	}
	order, err := s.deps.Checkout.PlaceOrder(ctx, in)
	if err != nil {
		return err
	}
	s.printf("✓ Pedido confirmado N° %s\n", order.ShortID())
	s.printf("  Subtotal: %s\n", s.deps.Money.Format(order.Subtotal))
	s.printf("  Envío:    %s\n", s.deps.Money.Format(order.DeliveryFee))
	s.printf("  Total:    %s\n", s.deps.Money.Format(order.Total))
	if order.Address != "" {
		s.printf("  Entrega en: %s\n", order.Address)
	}
	return nil
}

func (s *Shell) orders(_ context.Context, _ []string) error {
	list, err := s.deps.Checkout.Orders()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		s.printf("Aún no hay pedidos.\n")
		return nil
	}
	for _, o := range list {
		s.printf("  %s  %s  %-8s %3d art.  %s\n",
			o.ShortID(), o.CreatedAt.Format("02/01/2006 15:04"), o.DeliveryMethod,
			o.ItemsCount(), s.deps.Money.Format(o.Total))
	}
	return nil
}

// receipt acepta el ID completo o el prefijo que muestra "orders".
func (s *Shell) receipt(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("receipt <id>")
	}
	id := args[0]
	if list, err := s.deps.Checkout.Orders(); err == nil {
		for _, o := range list {
			if strings.HasPrefix(o.ID, id) {
				id = o.ID
				break
			}
		}
	}
	pdf, name, err := s.deps.Checkout.Receipt(ctx, id)
	if err != nil {
		return err
	}
	dir := s.deps.ReceiptDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("recibo: crear directorio: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("recibo: escribir archivo: %w", err)
	}
	s.printf("✓ Recibo guardado en %s\n", path)
	return nil
}
