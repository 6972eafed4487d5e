package billing

// LogoStore ciclo de vida del logo que lee el lienzo.
type LogoStore interface {
	// Acquire escribe el logo subido en un archivo temporal. release debe
	// llamarse siempre, haya éxito o error en el render.
	Acquire(data []byte, ext string) (path string, release func() error, err error)
	// DefaultLogo logo permanente del repositorio, si existe. No se libera.
	DefaultLogo() (string, bool)
}
