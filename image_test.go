package gridpaint

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func sampleImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestImage_EncodeByExtension(t *testing.T) {
	img := sampleImage()

	testCases := []struct {
		ext    string
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{".png", func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{".PNG", func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{".jpg", func(b *bytes.Buffer) (image.Image, error) { return jpeg.Decode(b) }},
		{".jpeg", func(b *bytes.Buffer) (image.Image, error) { return jpeg.Decode(b) }},
		{".bmp", func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) }},
	}
	for _, tc := range testCases {
		t.Run(tc.ext, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tc.ext, img))

			dec, err := tc.decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), dec.Bounds())
		})
	}
}

func TestImage_EncodeUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, ".gif", sampleImage())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())
}

func TestImage_EncodeImgUsesFileExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, encodeImg(f, sampleImage()))
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "bmp", format)
}

func TestImage_EncodeImgDefaultsToPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeImg(&buf, sampleImage()))

	_, format, err := image.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}
