package cli

import (
	"context"
	"strings"

	"github.com/jhoicas/storefront-core/internal/domain/entity"
)

func (s *Shell) listCatalog(_ context.Context, _ []string) error {
	products, err := s.deps.Catalog.List()
	if err != nil {
		return err
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) listCategory(_ context.Context, args []string) error {
	if len(args) == 0 {
		cats, err := s.deps.Catalog.Categories()
		if err != nil {
			return err
		}
		for _, c := range cats {
			s.printf("  %-14s %s\n", c.ID, c.Title)
		}
		return nil
	}
	products, err := s.deps.Catalog.ByCategory(args[0])
	if err != nil {
		return err
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) search(_ context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage("search <texto>")
	}
	products, err := s.deps.Catalog.Search(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) show(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("show <id>")
	}
	p, err := s.deps.Catalog.GetByID(args[0])
	if err != nil {
		return err
	}
	s.printf("%s\n", p.Name)
	s.printf("  Precio:    %s", s.deps.Money.Format(p.Price))
	if p.Discount > 0 {
		s.printf("  (antes %s, -%d%%)", s.deps.Money.Format(p.OriginalPrice()), p.Discount)
	}
	s.printf("\n  Categoría: %s\n", p.Category)
	if s.deps.Favorites.IsFavorite(p.ID) {
		s.printf("  ♥ en favoritos\n")
	}
	for _, it := range s.deps.Cart.Items() {
		if it.ProductID == p.ID {
			s.printf("  En el carrito: %d\n", it.Quantity)
		}
	}
	return nil
}

func (s *Shell) printProducts(products []*entity.Product) {
	if len(products) == 0 {
		s.printf("Sin productos.\n")
		return
	}
	for _, p := range products {
		mark := " "
		if s.deps.Favorites.IsFavorite(p.ID) {
			mark = "♥"
		}
		s.printf("%s [%s] %-28s %s\n", mark, p.ID, p.Name, s.deps.Money.Format(p.Price))
	}
}
