package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/storefront-core/internal/application/cart"
)

func (s *Shell) add(_ context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage("add <id> [cantidad]")
	}
	n := 1
	if len(args) == 2 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 || v > cart.MaxQuantity {
			return errUsage(fmt.Sprintf("add <id> [cantidad]; la cantidad va de 1 a %d", cart.MaxQuantity))
		}
		n = v
	}
	p, err := s.deps.Catalog.GetByID(args[0])
	if err != nil {
		return err
	}
	s.deps.Cart.AddQuantity(*p, n)
	s.printf("✓ %s agregado. Carrito: %d artículo(s).\n", p.Name, s.deps.Cart.ItemsCount())
	return nil
}

func (s *Shell) remove(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("remove <id>")
	}
	s.deps.Cart.RemoveFromCart(args[0])
	s.printf("Carrito: %d artículo(s).\n", s.deps.Cart.ItemsCount())
	return nil
}

func (s *Shell) setQuantity(_ context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage("qty <id> <cantidad>")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n > cart.MaxQuantity {
		return errUsage(fmt.Sprintf("qty <id> <cantidad>; la cantidad va de 0 a %d", cart.MaxQuantity))
	}
	s.deps.Cart.UpdateQuantity(args[0], n)
	s.printf("Carrito: %d artículo(s).\n", s.deps.Cart.ItemsCount())
	return nil
}

func (s *Shell) showCart(_ context.Context, _ []string) error {
	sum := s.deps.Cart.Summary()
	if len(sum.Items) == 0 {
		s.printf("El carrito está vacío.\n")
		return nil
	}
	for _, it := range sum.Items {
		s.printf("  [%s] %-28s %3d × %-14s %s\n",
			it.ProductID, it.Name, it.Quantity, s.deps.Money.Format(it.UnitPrice), s.deps.Money.Format(it.Subtotal()))
	}
	s.printf("  %d artículo(s) · Total: %s\n", sum.ItemsCount, s.deps.Money.Format(sum.Total))
	return nil
}

func (s *Shell) clearCart(_ context.Context, _ []string) error {
	s.deps.Cart.ClearCart()
	s.printf("Carrito vaciado.\n")
	return nil
}

func (s *Shell) toggleFavorite(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("fav <id>")
	}
	p, err := s.deps.Catalog.GetByID(args[0])
	if err != nil {
		return err
	}
	if s.deps.Favorites.Toggle(p.ID) {
		s.printf("♥ %s agregado a favoritos.\n", p.Name)
	} else {
		s.printf("%s quitado de favoritos.\n", p.Name)
	}
	return nil
}

func (s *Shell) listFavorites(_ context.Context, _ []string) error {
	ids := s.deps.Favorites.IDs()
	if len(ids) == 0 {
		s.printf("Sin favoritos.\n")
		return nil
	}
	for _, id := range ids {
		p, err := s.deps.Catalog.GetByID(id)
		if err != nil {
			continue
		}
		s.printf("♥ [%s] %-28s %s\n", p.ID, p.Name, s.deps.Money.Format(p.Price))
	}
	return nil
}
