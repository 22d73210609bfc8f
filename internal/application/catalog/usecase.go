package catalog

import (
	"fmt"
	"strings"

	"github.com/jhoicas/storefront-core/internal/domain"
	"github.com/jhoicas/storefront-core/internal/domain/entity"
	"github.com/jhoicas/storefront-core/internal/domain/repository"
)

// UseCase consultas sobre el catálogo fijo: listado, detalle, vitrinas y búsqueda.
type UseCase struct {
	repo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List todos los productos.
func (uc *UseCase) List() ([]*entity.Product, error) {
	return uc.repo.List()
}

// GetByID devuelve domain.ErrNotFound si el producto no existe.
func (uc *UseCase) GetByID(id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// ByCategory productos de una categoría (sin distinguir mayúsculas).
func (uc *UseCase) ByCategory(category string) ([]*entity.Product, error) {
	return uc.repo.ListByCategory(strings.TrimSpace(category))
}

// Categories vitrinas disponibles.
func (uc *UseCase) Categories() ([]entity.Category, error) {
	return uc.repo.Categories()
}

// Search busca query como subcadena del nombre o de la categoría, sin distinguir mayúsculas.
// Una consulta en blanco no devuelve resultados.
func (uc *UseCase) Search(query string) ([]*entity.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []*entity.Product{}, nil
	}
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
