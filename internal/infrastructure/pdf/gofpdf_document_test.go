package pdf_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicer/internal/infrastructure/pdf"
)

func writeImage(t *testing.T, name string, encode func(*bytes.Buffer, image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.RGBA{G: 180, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func pngFile(t *testing.T) string {
	return writeImage(t, "logo.png", func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) })
}

func jpegFile(t *testing.T) string {
	return writeImage(t, "logo.jpg", func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) })
}

func TestGofpdfDocument_GeneraPDF(t *testing.T) {
	doc := pdf.NewGofpdfFactory("Elite Hand Mulch LLC").NewDocument()
	footerCalls := 0
	doc.SetFooterFunc(func() { footerCalls++ })
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 5, "Bill To: José", "", 1, "L", false)
	doc.Rect(10, 50, 100, 17, "D")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 1, doc.PageNo())
	assert.Equal(t, 1, footerCalls, "el pie se dibuja al cerrar la última página")
}

func TestGofpdfDocument_CursorComoFPDF(t *testing.T) {
	doc := pdf.NewGofpdfFactory("").NewDocument()
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)

	doc.SetXY(50, 10)
	doc.Cell(20, 5, "x", "", 0, "", false)
	x, y := doc.GetXY()
	assert.InDelta(t, 70.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)

	doc.Cell(20, 5, "y", "", 1, "", false)
	x, y = doc.GetXY()
	assert.InDelta(t, 10.0, x, 1e-9, "ln=1 vuelve al margen izquierdo")
	assert.InDelta(t, 15.0, y, 1e-9)
}

func TestGofpdfDocument_MeasureTextUsaCp1252(t *testing.T) {
	doc := pdf.NewGofpdfFactory("").NewDocument()
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)

	assert.Zero(t, doc.MeasureText(""))
	plain := doc.MeasureText("Jose")
	accented := doc.MeasureText("José")
	assert.Greater(t, plain, 0.0)
	assert.InDelta(t, plain, accented, 0.5, "é es un solo byte en Windows-1252")
	assert.Greater(t, doc.MeasureText("Mulch Installation"), plain)
}

func TestGofpdfDocument_EmbedImage(t *testing.T) {
	for name, path := range map[string]string{"png": pngFile(t), "jpeg": jpegFile(t)} {
		t.Run(name, func(t *testing.T) {
			doc := pdf.NewGofpdfFactory("").NewDocument()
			doc.AddPage()

			assert.True(t, doc.EmbedImage(path, 10, 8, 33))

			var buf bytes.Buffer
			require.NoError(t, doc.Output(&buf))
		})
	}
}

func TestGofpdfDocument_ImagenIlegibleSeOmite(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not a png"), 0o600))

	doc := pdf.NewGofpdfFactory("").NewDocument()
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)

	assert.False(t, doc.EmbedImage(garbage, 10, 8, 33))
	assert.False(t, doc.EmbedImage(filepath.Join(t.TempDir(), "missing.png"), 10, 8, 33))
	doc.Cell(0, 5, "INVOICE", "", 1, "R", false)

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf), "un logo ilegible no invalida el documento")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
