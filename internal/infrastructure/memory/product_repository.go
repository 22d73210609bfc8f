// Package memory implementa los puertos de repositorio en memoria: catálogo
// fijo de productos y libro de pedidos del checkout simulado.
package memory

import (
	"strings"

	"github.com/jhoicas/storefront-core/internal/domain/entity"
	"github.com/jhoicas/storefront-core/internal/domain/repository"
)

// ProductRepository catálogo de solo lectura.
type ProductRepository struct {
	products   []entity.Product
	byID       map[string]int
	categories []entity.Category
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository construye el repositorio con los productos y categorías dados.
func NewProductRepository(products []entity.Product, categories []entity.Category) *ProductRepository {
	r := &ProductRepository{
		products:   append([]entity.Product(nil), products...),
		byID:       make(map[string]int, len(products)),
		categories: append([]entity.Category(nil), categories...),
	}
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r
}

// NewSampleProductRepository catálogo de ejemplo de la aplicación.
func NewSampleProductRepository() *ProductRepository {
	return NewProductRepository(SampleProducts(), SampleCategories())
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	p := r.products[i]
	return &p, nil
}

func (r *ProductRepository) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		out = append(out, &p)
	}
	return out, nil
}

// ListByCategory compara la categoría sin distinguir mayúsculas.
func (r *ProductRepository) ListByCategory(category string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for i := range r.products {
		if strings.EqualFold(r.products[i].Category, category) {
			p := r.products[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *ProductRepository) Categories() ([]entity.Category, error) {
	return append([]entity.Category(nil), r.categories...), nil
}
