package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env, archivo y flags).
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Checkout CheckoutConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Locale   string // idioma para formatear montos (fr, es, en...)
}

// StorageConfig almacenamiento local del dispositivo.
type StorageConfig struct {
	Dir        string // directorio donde vive un archivo por clave
	SessionKey string // clave bien conocida del registro de sesión
}

// AuthConfig backend de autenticación simulado.
// Con TokenSecret vacío el backend no emite token de sesión.
type AuthConfig struct {
	TokenSecret     string
	TokenExpiration int // minutos
	TokenIssuer     string
}

// CheckoutConfig reglas del checkout simulado.
type CheckoutConfig struct {
	DeliveryFee decimal.Decimal // costo de envío a domicilio
	Currency    string
	ReceiptDir  string // destino de los recibos PDF
}

// Nombres de flags de línea de comandos enlazados a las claves de entorno.
var flagKeys = map[string]string{
	"env":         "APP_ENV",
	"log-level":   "LOG_LEVEL",
	"storage-dir": "STORAGE_DIR",
	"receipt-dir": "RECEIPT_DIR",
}

// RegisterFlags declara en fs los flags que Load entiende.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("env", "development", "entorno: development, staging, production")
	fs.String("log-level", "info", "nivel de log: trace, debug, info, warn, error")
	fs.String("storage-dir", "", "directorio del almacenamiento local")
	fs.String("receipt-dir", "", "directorio de recibos PDF")
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORAGE_DIR, AUTH_TOKEN_SECRET, etc.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags igual que Load, pero los flags explícitamente indicados en fs ganan sobre el entorno.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: enlazar flag %s: %w", name, err)
				}
			}
		}
	}

	storageDir := getString(v, "STORAGE_DIR", ".storefront")

	fee, err := getDecimal(v, "CHECKOUT_DELIVERY_FEE", decimal.NewFromInt(1000))
	if err != nil {
		return nil, err
	}
	if fee.IsNegative() {
		return nil, fmt.Errorf("config: CHECKOUT_DELIVERY_FEE no puede ser negativo")
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "storefront"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Locale:   getString(v, "APP_LOCALE", "fr"),
		},
		Storage: StorageConfig{
			Dir:        storageDir,
			SessionKey: getString(v, "STORAGE_SESSION_KEY", "user"),
		},
		Auth: AuthConfig{
			TokenSecret:     getString(v, "AUTH_TOKEN_SECRET", ""),
			TokenExpiration: getInt(v, "AUTH_TOKEN_EXPIRATION_MINUTES", 60*24*30),
			TokenIssuer:     getString(v, "AUTH_TOKEN_ISSUER", "storefront"),
		},
		Checkout: CheckoutConfig{
			DeliveryFee: fee,
			Currency:    getString(v, "CHECKOUT_CURRENCY", "FCFA"),
			ReceiptDir:  getString(v, "RECEIPT_DIR", filepath.Join(storageDir, "receipts")),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) (decimal.Decimal, error) {
	if !v.IsSet(key) || v.GetString(key) == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(v.GetString(key))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido: %w", key, err)
	}
	return d, nil
}
