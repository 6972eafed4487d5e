package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/invoicer/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "invoicer-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "front-desk", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	client, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, "front-desk", client)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "front-desk", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "front-desk", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_EmisorDistinto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "front-desk", "otro-emisor", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)

	client, err := pkgjwt.Parse(testSecret, "", tok)
	require.NoError(t, err, "sin emisor configurado no se valida iss")
	assert.Equal(t, "front-desk", client)
}

func TestGenerate_SinSecretNiCliente(t *testing.T) {
	_, err := pkgjwt.Generate("", "front-desk", testIssuer, 60)
	assert.Error(t, err)
	_, err = pkgjwt.Generate(testSecret, "", testIssuer, 60)
	assert.Error(t, err)
}
