package gridpaint

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned for output files of unknown image type.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SupportedExtensions lists the output file extensions.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Encode writes img in the format matching the file extension ext.
func Encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// encodeImg encodes an image to a destination of type io.Writer.
// Files are encoded according to their extension, any other writer gets a PNG image.
func encodeImg(w io.Writer, img image.Image) error {
	if f, ok := w.(*os.File); ok {
		if ext := filepath.Ext(f.Name()); ext != "" {
			return Encode(f, ext, img)
		}
	}
	return png.Encode(w, img)
}
