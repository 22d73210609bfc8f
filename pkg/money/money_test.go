package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-core/pkg/money"
)

func TestFormat_FrancesConDosDecimales(t *testing.T) {
	f := money.NewFormatter("fr", "FCFA")
	assert.Equal(t, "12,99 FCFA", f.Format(decimal.RequireFromString("12.99")))
	assert.Equal(t, "0,00 FCFA", f.Format(decimal.Zero))
}

func TestFormat_AgrupaMiles(t *testing.T) {
	f := money.NewFormatter("fr", "FCFA")
	out := f.Format(decimal.NewFromInt(1000))
	assert.True(t, strings.HasPrefix(out, "1"))
	assert.True(t, strings.HasSuffix(out, "000,00 FCFA"), "obtenido: %q", out)
	assert.NotEqual(t, "1000,00 FCFA", out, "debe llevar separador de miles")
}

func TestFormat_Ingles(t *testing.T) {
	f := money.NewFormatter("en", "")
	assert.Equal(t, "1,299.99", f.Format(decimal.RequireFromString("1299.99")))
}

func TestNewFormatter_LocaleInvalidoUsaFrances(t *testing.T) {
	f := money.NewFormatter("%%", "FCFA")
	assert.Equal(t, "9,99 FCFA", f.Format(decimal.RequireFromString("9.99")))
	assert.Equal(t, "FCFA", f.Currency())
}

func TestFormat_MontosGrandesSinPerderPrecision(t *testing.T) {
	f := money.NewFormatter("en", "")
	assert.Equal(t, "12,345,678,901,234,567.89", f.Format(decimal.RequireFromString("12345678901234567.89")))
	assert.Equal(t, "-1,299.99", f.Format(decimal.RequireFromString("-1299.99")))
	assert.Equal(t, "100.00", f.Format(decimal.NewFromInt(100)))
}

func TestFormat_RedondeaADosDecimales(t *testing.T) {
	f := money.NewFormatter("en", "FCFA")
	assert.Equal(t, "0.50 FCFA", f.Format(decimal.RequireFromString("0.499")))
}
