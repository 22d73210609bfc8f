package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-core/internal/application/catalog"
	"github.com/jhoicas/storefront-core/internal/domain"
	"github.com/jhoicas/storefront-core/internal/infrastructure/memory"
)

func newCatalog() *catalog.UseCase {
	return catalog.NewUseCase(memory.NewSampleProductRepository())
}

func names(t *testing.T, uc *catalog.UseCase, q string) []string {
	t.Helper()
	res, err := uc.Search(q)
	require.NoError(t, err)
	out := make([]string, 0, len(res))
	for _, p := range res {
		out = append(out, p.Name)
	}
	return out
}

func TestSearch_PorNombreSinDistinguirMayusculas(t *testing.T) {
	uc := newCatalog()
	assert.Equal(t, []string{"Pizza Margherita"}, names(t, uc, "PIZZA"))
}

func TestSearch_PorCategoria(t *testing.T) {
	uc := newCatalog()
	assert.Len(t, names(t, uc, "aliment"), 3)
}

func TestSearch_ConsultaEnBlanco_SinResultados(t *testing.T) {
	uc := newCatalog()
	assert.Empty(t, names(t, uc, "   "))
}

func TestGetByID_Inexistente_ErrNotFound(t *testing.T) {
	uc := newCatalog()
	_, err := uc.GetByID("404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, err := uc.GetByID(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, "Samsung Galaxy S24", p.Name)
}

func TestCategories_OrdenDeVitrinas(t *testing.T) {
	uc := newCatalog()
	cats, err := uc.Categories()
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "EN PROMO", cats[0].Title)

	promo, err := uc.ByCategory(cats[0].ID)
	require.NoError(t, err)
	assert.Len(t, promo, 4)
}

func TestOriginalPrice_DeshaceElDescuento(t *testing.T) {
	uc := newCatalog()
	p, err := uc.GetByID("2") // 999.99 con 20 %
	require.NoError(t, err)
	assert.Equal(t, "1249.99", p.OriginalPrice().StringFixed(2))

	sinDescuento, err := uc.GetByID("3")
	require.NoError(t, err)
	assert.True(t, sinDescuento.OriginalPrice().Equal(sinDescuento.Price))
}
