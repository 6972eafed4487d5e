package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes llegan al
// usuario del formulario, que está en inglés.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrClientNameRequired = errors.New("client name is required")
	ErrRenderFailed       = errors.New("could not generate the document")
)
