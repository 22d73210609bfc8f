package repository

import "github.com/jhoicas/storefront-core/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListByCategory(category string) ([]*entity.Product, error)
	Categories() ([]entity.Category, error)
}
