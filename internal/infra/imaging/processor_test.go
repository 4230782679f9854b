package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	domainerrors "contactbook/internal/domain/errors"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return &buf
}

func TestSquareAvatar_CropsAndResizes(t *testing.T) {
	p := NewImageProcessor()

	var out bytes.Buffer
	err := p.SquareAvatar(&out, encodePNG(t, 400, 300), ".png", 250)
	require.NoError(t, err)

	decoded, format, err := image.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 250, decoded.Bounds().Dx())
	assert.Equal(t, 250, decoded.Bounds().Dy())
}

func TestSquareAvatar_EncodesAsExtension(t *testing.T) {
	p := NewImageProcessor()

	var out bytes.Buffer
	require.NoError(t, p.SquareAvatar(&out, encodePNG(t, 64, 64), ".JPG", 32))

	_, format, err := image.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestSquareAvatar_RejectsGarbage(t *testing.T) {
	p := NewImageProcessor()

	err := p.SquareAvatar(&bytes.Buffer{}, strings.NewReader("not an image"), ".png", 250)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestFormatFromExtension(t *testing.T) {
	format, err := FormatFromExtension(".jpeg")
	require.NoError(t, err)
	assert.Equal(t, imaging.JPEG, format)

	_, err = FormatFromExtension(".exe")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)

	_, err = FormatFromExtension("")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}
