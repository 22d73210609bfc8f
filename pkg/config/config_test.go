package config_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-core/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORAGE_DIR", "")
	t.Setenv("CHECKOUT_DELIVERY_FEE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "user", cfg.Storage.SessionKey, "la clave de sesión por defecto es \"user\"")
	assert.Equal(t, ".storefront", cfg.Storage.Dir)
	assert.True(t, cfg.Checkout.DeliveryFee.Equal(decimal.NewFromInt(1000)), "envío por defecto 1000")
	assert.Equal(t, "FCFA", cfg.Checkout.Currency)
	assert.Equal(t, filepath.Join(".storefront", "receipts"), cfg.Checkout.ReceiptDir)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DIR", "/tmp/tienda")
	t.Setenv("STORAGE_SESSION_KEY", "sesion")
	t.Setenv("CHECKOUT_DELIVERY_FEE", "1500.50")
	t.Setenv("AUTH_TOKEN_SECRET", "s3cr3t")
	t.Setenv("AUTH_TOKEN_EXPIRATION_MINUTES", "15")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tienda", cfg.Storage.Dir)
	assert.Equal(t, "sesion", cfg.Storage.SessionKey)
	assert.Equal(t, "1500.5", cfg.Checkout.DeliveryFee.String())
	assert.Equal(t, "s3cr3t", cfg.Auth.TokenSecret)
	assert.Equal(t, 15, cfg.Auth.TokenExpiration)
	assert.Equal(t, filepath.Join("/tmp/tienda", "receipts"), cfg.Checkout.ReceiptDir,
		"los recibos cuelgan del directorio de almacenamiento si no se indica otro")
}

func TestLoadWithFlags_FlagGanaSobreEntorno(t *testing.T) {
	t.Setenv("STORAGE_DIR", "/desde/env")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--storage-dir=/desde/flag"}))

	cfg, err := config.LoadWithFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, "/desde/flag", cfg.Storage.Dir)
}

func TestLoad_EnvioInvalido_RetornaError(t *testing.T) {
	t.Setenv("CHECKOUT_DELIVERY_FEE", "mil")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("CHECKOUT_DELIVERY_FEE", "-1")
	_, err = config.Load()
	assert.Error(t, err, "un envío negativo no es válido")
}
