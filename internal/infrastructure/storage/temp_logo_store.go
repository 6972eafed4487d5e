// Package storage guarda el logo subido en un archivo temporal para que la
// librería PDF lo lea desde disco.
package storage

import (
	"errors"
	"fmt"
	"os"
)

// TempLogoStore crea un archivo temporal por petición y ofrece el logo por
// defecto del repositorio cuando no se sube ninguno.
type TempLogoStore struct {
	dir         string // "" = os.TempDir()
	defaultLogo string
}

// NewTempLogoStore construye el almacén. defaultLogo puede ir vacío.
func NewTempLogoStore(dir, defaultLogo string) *TempLogoStore {
	return &TempLogoStore{dir: dir, defaultLogo: defaultLogo}
}

// Acquire escribe data en un archivo temporal con la extensión ext (".png", ".jpg").
// release borra el archivo; debe llamarse siempre, también si el render falla.
func (s *TempLogoStore) Acquire(data []byte, ext string) (path string, release func() error, err error) {
	f, err := os.CreateTemp(s.dir, "invoice-logo-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("logo: crear temporal: %w", err)
	}
	path = f.Name()
	release = func() error {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("logo: borrar temporal %s: %w", path, err)
		}
		return nil
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = release()
		return "", nil, fmt.Errorf("logo: escribir temporal: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = release()
		return "", nil, fmt.Errorf("logo: cerrar temporal: %w", err)
	}
	return path, release, nil
}

// DefaultLogo ruta del logo del repositorio si existe como archivo regular.
// Nunca se borra.
func (s *TempLogoStore) DefaultLogo() (string, bool) {
	if s.defaultLogo == "" {
		return "", false
	}
	info, err := os.Stat(s.defaultLogo)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return s.defaultLogo, true
}
