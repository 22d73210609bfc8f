package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-core/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Component("session").Info().Str("user_id", "1").Msg("sesión iniciada")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "la salida debe ser JSON")
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "session", entry["component"])
	assert.Equal(t, "1", entry["user_id"])
	assert.Equal(t, "sesión iniciada", entry["message"])
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("no debe aparecer")
	assert.Empty(t, buf.String(), "info no debe escribirse con nivel warn")

	log.Warn().Msg("sí aparece")
	assert.Contains(t, buf.String(), "sí aparece")
}

func TestNop_NoEscribeNada(t *testing.T) {
	log := logger.Nop()
	assert.NotPanics(t, func() {
		log.Error().Msg("descartado")
		log.Component("cart").Info().Msg("descartado")
	})
}
