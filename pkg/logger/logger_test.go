package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicer/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Info().Str("invoice_number", "1001").Msg("factura generada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "1001", entry["invoice_number"])
	assert.Equal(t, "factura generada", entry["message"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "WARN", Output: &buf})

	log.Info().Msg("oculto")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNop_NoEscribe(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}
