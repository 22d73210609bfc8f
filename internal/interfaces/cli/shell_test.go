package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-core/internal/application/cart"
	"github.com/jhoicas/storefront-core/internal/application/catalog"
	"github.com/jhoicas/storefront-core/internal/application/checkout"
	"github.com/jhoicas/storefront-core/internal/application/favorites"
	"github.com/jhoicas/storefront-core/internal/application/session"
	"github.com/jhoicas/storefront-core/internal/infrastructure/authmock"
	"github.com/jhoicas/storefront-core/internal/infrastructure/memory"
	"github.com/jhoicas/storefront-core/internal/infrastructure/pdf"
	"github.com/jhoicas/storefront-core/internal/infrastructure/storage"
	"github.com/jhoicas/storefront-core/internal/interfaces/cli"
	"github.com/jhoicas/storefront-core/pkg/money"
)

type harness struct {
	deps cli.Deps
	out  *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithTokens(t, authmock.TokenConfig{})
}

func newHarnessWithTokens(t *testing.T, tokens authmock.TokenConfig) *harness {
	t.Helper()
	backend := authmock.New(tokens)
	sess := session.NewStore(storage.NewMemory(), backend)
	require.NoError(t, sess.Load(context.Background()))
	c := cart.NewStore(nil)
	sess.OnLogout(c.ClearCart)
	f := money.NewFormatter("fr", "FCFA")
	deps := cli.Deps{
		Session:   sess,
		Cart:      c,
		Catalog:   catalog.NewUseCase(memory.NewSampleProductRepository()),
		Favorites: favorites.NewStore(),
		Checkout: checkout.NewUseCase(sess, c, memory.NewOrderRepository(),
			pdf.NewMarotoReceiptGenerator("Tienda", f),
			checkout.Config{DeliveryFee: decimal.NewFromInt(1000)}, nil),
		Money:      f,
		Tokens:     backend,
		ReceiptDir: t.TempDir(),
	}
	return &harness{deps: deps, out: &bytes.Buffer{}}
}

// exec ejecuta las líneas y devuelve la salida producida solo por ellas.
func (h *harness) exec(lines ...string) string {
	h.out.Reset()
	sh := cli.NewShell(h.deps, strings.NewReader(""), h.out)
	for _, l := range lines {
		sh.Exec(context.Background(), l)
	}
	return h.out.String()
}

func TestRun_HelpYQuit(t *testing.T) {
	h := newHarness(t)
	sh := cli.NewShell(h.deps, strings.NewReader("help\nquit\ncatalog\n"), h.out)

	require.NoError(t, sh.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "checkout")
	assert.Contains(t, out, "Hasta pronto.")
	assert.NotContains(t, out, "iPhone", "nada se ejecuta después de quit")
}

func TestRun_FinDeEntradaTermina(t *testing.T) {
	h := newHarness(t)
	sh := cli.NewShell(h.deps, strings.NewReader("cart"), h.out)
	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, h.out.String(), "El carrito está vacío.")
}

func TestRun_CancelarContextoInterrumpeLecturaPendiente(t *testing.T) {
	h := newHarness(t)
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	sh := cli.NewShell(h.deps, r, h.out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run sigue bloqueado en la entrada tras cancelar el contexto")
	}
}

func TestRun_CancelarDuranteRegistro(t *testing.T) {
	h := newHarness(t)
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	sh := cli.NewShell(h.deps, r, h.out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	_, err := io.WriteString(w, "register\n")
	require.NoError(t, err)
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run sigue bloqueado en el formulario tras cancelar el contexto")
	}
	assert.False(t, h.deps.Session.IsAuthenticated())
}

func TestExec_ComandoDesconocido(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.exec("bailar"), "Comando desconocido: bailar")
	assert.Empty(t, h.exec("   "))
}

func TestCatalogo_BusquedaYDetalle(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.exec("catalog"), "Casque Audio")
	assert.Contains(t, h.exec("category"), "TOP ALIMENTATION")
	out := h.exec("category bijoux")
	assert.Contains(t, out, "Collier Perles")
	assert.NotContains(t, out, "Pizza")

	assert.Contains(t, h.exec("search pizza"), "Pizza Margherita")
	assert.Contains(t, h.exec("search nada-parecido"), "Sin productos.")
	assert.Contains(t, h.exec("search"), "[USAGE]")

	out = h.exec("show 1")
	assert.Contains(t, out, "iPhone 15 Pro Max")
	assert.Contains(t, out, "-15%")
	assert.Contains(t, h.exec("show 999"), "[NOT_FOUND]")
}

func TestCarrito_AgregarCantidadYTotal(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.exec("add 3 2"), "Carrito: 2 artículo(s).")
	h.exec("add 6")
	out := h.exec("cart")
	assert.Contains(t, out, "Pizza Margherita")
	assert.Contains(t, out, "3 artículo(s)")
	assert.Contains(t, out, "115,97 FCFA")

	h.exec("qty 3 0")
	assert.Equal(t, 1, h.deps.Cart.ItemsCount())
	h.exec("remove 6")
	assert.True(t, h.deps.Cart.IsEmpty())

	assert.Contains(t, h.exec("add 3 cero"), "[USAGE]")
	assert.Contains(t, h.exec("add 3 9223372036854775807"), "[USAGE]")
	assert.Contains(t, h.exec("add 3 1000"), "[USAGE]")
	assert.Contains(t, h.exec("add 999"), "[NOT_FOUND]")
	assert.True(t, h.deps.Cart.IsEmpty())
}

func TestFavoritos(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.exec("fav 6"), "agregado a favoritos")
	assert.Contains(t, h.exec("favs"), "Collier Perles")
	assert.Contains(t, h.exec("fav 6"), "quitado de favoritos")
	assert.Contains(t, h.exec("favs"), "Sin favoritos.")
}

func TestSesion_LoginPerfilLogoutVaciaCarrito(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.exec("profile"), "[UNAUTHORIZED]")
	assert.Contains(t, h.exec("login 22790000000"), "[USAGE]")

	assert.Contains(t, h.exec("login 22790000000 secreto"), "Bienvenido, "+authmock.DemoUserName)
	h.exec("update address Quartier Plateau, Niamey")
	assert.Contains(t, h.exec("profile"), "Quartier Plateau, Niamey")
	assert.Contains(t, h.exec("update email no-es-email"), "[VALIDATION]")

	h.exec("add 3")
	assert.Contains(t, h.exec("logout"), "Sesión cerrada.")
	assert.False(t, h.deps.Session.IsAuthenticated())
	assert.True(t, h.deps.Cart.IsEmpty(), "cerrar sesión vacía el carrito")
}

func TestSesion_PerfilMuestraVigenciaDelToken(t *testing.T) {
	h := newHarness(t)
	h.exec("login 22790000000 secreto")
	assert.NotContains(t, h.exec("profile"), "Sesión:", "sin token no hay vigencia que mostrar")

	h = newHarnessWithTokens(t, authmock.TokenConfig{Secret: "s3cr3t", ExpMinutes: 60, Issuer: "storefront-test"})
	h.exec("login 22790000000 secreto")
	assert.Contains(t, h.exec("profile"), "Sesión:    válida hasta")
}

func TestSesion_RegistroInteractivo(t *testing.T) {
	h := newHarness(t)
	input := "register\nAïcha\n+227 91 11 11 11\n\nNiamey\nclave\nclave\nprofile\n"
	sh := cli.NewShell(h.deps, strings.NewReader(input), h.out)

	require.NoError(t, sh.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Cuenta creada. Bienvenido, Aïcha.")
	assert.Contains(t, out, "+227 91 11 11 11")
}

func TestSesion_RegistroCancelado(t *testing.T) {
	h := newHarness(t)
	sh := cli.NewShell(h.deps, strings.NewReader("register\nAïcha\n"), h.out)

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, h.out.String(), "operación cancelada")
	assert.False(t, h.deps.Session.IsAuthenticated())
}

func TestCheckout_PedidoHistorialYRecibo(t *testing.T) {
	h := newHarness(t)
	h.exec("add 3 2", "add 6")
	assert.Contains(t, h.exec("checkout"), "[UNAUTHORIZED]")

	h.exec("login 22790000000 secreto")
	out := h.exec("checkout delivery cash dejar en portería")
	assert.Contains(t, out, "Pedido confirmado")
	assert.Contains(t, out, "115,97 FCFA")
	assert.True(t, h.deps.Cart.IsEmpty())
	assert.Contains(t, h.exec("checkout"), "[EMPTY_CART]")

	orders, err := h.deps.Checkout.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	short := orders[0].ID[:8]
	assert.Contains(t, h.exec("orders"), short)

	assert.Contains(t, h.exec("receipt "+short), "Recibo guardado en")
	data, err := os.ReadFile(filepath.Join(h.deps.ReceiptDir, "pedido-"+short+".pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	assert.Contains(t, h.exec("receipt ffffffff"), "[NOT_FOUND]")
}

func TestCheckout_MetodoInvalido(t *testing.T) {
	h := newHarness(t)
	h.exec("login 22790000000 secreto", "add 3")
	assert.Contains(t, h.exec("checkout avion"), "[VALIDATION]")
	assert.False(t, h.deps.Cart.IsEmpty())
}
