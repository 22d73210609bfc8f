package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-core/internal/domain/entity"
)

func TestOrder_ShortID(t *testing.T) {
	assert.Equal(t, "8f14e45f", (&entity.Order{ID: "8f14e45f-ceea-467f-a0e6-0d4c3b2f1a77"}).ShortID())
	assert.Equal(t, "abc", (&entity.Order{ID: "abc"}).ShortID(), "un ID corto se devuelve completo")
}

func TestOrder_ItemsCount(t *testing.T) {
	o := &entity.Order{Items: []entity.CartItem{{Quantity: 2}, {Quantity: 3}}}
	assert.Equal(t, 5, o.ItemsCount())
}
