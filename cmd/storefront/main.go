package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/storefront-core/internal/application/cart"
	"github.com/jhoicas/storefront-core/internal/application/catalog"
	"github.com/jhoicas/storefront-core/internal/application/checkout"
	"github.com/jhoicas/storefront-core/internal/application/favorites"
	"github.com/jhoicas/storefront-core/internal/application/session"
	"github.com/jhoicas/storefront-core/internal/infrastructure/authmock"
	"github.com/jhoicas/storefront-core/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/storefront-core/internal/infrastructure/pdf"
	"github.com/jhoicas/storefront-core/internal/infrastructure/storage"
	"github.com/jhoicas/storefront-core/internal/interfaces/cli"
	"github.com/jhoicas/storefront-core/pkg/config"
	"github.com/jhoicas/storefront-core/pkg/logger"
	"github.com/jhoicas/storefront-core/pkg/money"
)

func main() {
	fs := pflag.NewFlagSet("storefront", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage_dir", cfg.Storage.Dir).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := storage.NewFile(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}

	backend := authmock.New(authmock.TokenConfig{
		Secret:     cfg.Auth.TokenSecret,
		ExpMinutes: cfg.Auth.TokenExpiration,
		Issuer:     cfg.Auth.TokenIssuer,
	})
	sess := session.NewStore(kv, backend,
		session.WithKey(cfg.Storage.SessionKey),
		session.WithLogger(log),
	)
	// Un registro ilegible no impide arrancar: se sigue sin sesión.
	if err := sess.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("restaurar sesión")
	}

	cartStore := cart.NewStore(log)
	sess.OnLogout(cartStore.ClearCart)

	formatter := money.NewFormatter(cfg.App.Locale, cfg.Checkout.Currency)
	productRepo := memory.NewSampleProductRepository()
	orderRepo := memory.NewOrderRepository()
	receipts := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name, formatter)

	checkoutUC := checkout.NewUseCase(sess, cartStore, orderRepo, receipts,
		checkout.Config{DeliveryFee: cfg.Checkout.DeliveryFee}, log)

	shell := cli.NewShell(cli.Deps{
		Session:    sess,
		Cart:       cartStore,
		Catalog:    catalog.NewUseCase(productRepo),
		Favorites:  favorites.NewStore(),
		Checkout:   checkoutUC,
		Money:      formatter,
		Tokens:     backend,
		ReceiptDir: cfg.Checkout.ReceiptDir,
		Log:        log,
	}, os.Stdin, os.Stdout)

	if err := shell.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("terminal")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}
