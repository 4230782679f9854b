// Package imaging crops uploaded pictures into square avatars.
package imaging

import (
	"io"
	"strings"

	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/service"

	"github.com/disintegration/imaging"
)

type processor struct{}

// NewImageProcessor returns a service.ImageProcessor backed by disintegration/imaging.
func NewImageProcessor() service.ImageProcessor {
	return &processor{}
}

// SquareAvatar center-crops src to a size×size square using Lanczos resampling.
func (p *processor) SquareAvatar(dst io.Writer, src io.Reader, ext string, size int) error {
	format, err := FormatFromExtension(ext)
	if err != nil {
		return err
	}

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return domainerrors.ErrInvalidImage.WrapMessage(err.Error())
	}

	avatar := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	if err := imaging.Encode(dst, avatar, format); err != nil {
		return domainerrors.ErrInternalError.WrapMessage("encode avatar: " + err.Error())
	}

	return nil
}

// FormatFromExtension maps a file extension such as ".JPG" to an output format.
func FormatFromExtension(ext string) (imaging.Format, error) {
	format, err := imaging.FormatFromExtension(strings.TrimPrefix(strings.ToLower(ext), "."))
	if err != nil {
		return 0, domainerrors.ErrInvalidImage.WrapMessage("unsupported image extension " + ext)
	}

	return format, nil
}
