package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-core/internal/domain/entity"
)

// SampleCategories vitrinas de la pantalla de inicio, en orden de aparición.
func SampleCategories() []entity.Category {
	return []entity.Category{
		{ID: entity.CategoryPromo, Title: "EN PROMO"},
		{ID: entity.CategoryAlimentation, Title: "TOP ALIMENTATION"},
		{ID: entity.CategoryBijoux, Title: "BIJOUX DU QUOTIDIEN"},
	}
}

// SampleProducts catálogo fijo de la aplicación (no hay backend de productos).
func SampleProducts() []entity.Product {
	d := decimal.RequireFromString
	return []entity.Product{
		{ID: "1", Name: "iPhone 15 Pro Max", Price: d("1299.99"), Discount: 15, IsPromo: true,
			Category: entity.CategoryPromo, Image: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400"},
		{ID: "2", Name: "Samsung Galaxy S24", Price: d("999.99"), Discount: 20, IsPromo: true,
			Category: entity.CategoryPromo, Image: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400"},
		{ID: "3", Name: "Pizza Margherita", Price: d("12.99"),
			Category: entity.CategoryAlimentation, Image: "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=400"},
		{ID: "4", Name: "Burger Premium", Price: d("15.50"),
			Category: entity.CategoryAlimentation, Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400"},
		{ID: "5", Name: "Salade César", Price: d("9.99"),
			Category: entity.CategoryAlimentation, Image: "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400"},
		{ID: "6", Name: "Collier Perles", Price: d("89.99"),
			Category: entity.CategoryBijoux, Image: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400"},
		{ID: "7", Name: "Boucles d'oreilles Or", Price: d("125.00"),
			Category: entity.CategoryBijoux, Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400"},
		{ID: "8", Name: "Bracelet Argent", Price: d("65.99"),
			Category: entity.CategoryBijoux, Image: "https://images.unsplash.com/photo-1611652022419-a9419f74343d?w=400"},
		{ID: "9", Name: "Montre Connectée", Price: d("299.99"), Discount: 10, IsPromo: true,
			Category: entity.CategoryPromo, Image: "https://images.unsplash.com/photo-1523275335684-c519a7ee1ac5?w=400"},
		{ID: "10", Name: "Casque Audio", Price: d("150.00"), IsPromo: true,
			Category: entity.CategoryPromo, Image: "https://images.unsplash.com/photo-1505740420928-5e560c06f2e0?w=400"},
	}
}
