package service

import (
	"context"
	"io"
)

// ImageProcessor turns an uploaded image into a square avatar.
type ImageProcessor interface {
	// SquareAvatar decodes src, center-crops and resizes it to size×size and writes it to dst
	// in the format implied by ext (".png", ".jpg", ...).
	SquareAvatar(dst io.Writer, src io.Reader, ext string, size int) error
}

// AvatarStorage keeps processed avatars where they are publicly served.
type AvatarStorage interface {
	// Put stores the avatar under key, replacing any previous one, and returns its public URL.
	Put(ctx context.Context, key string, src io.Reader, contentType string) (string, error)
	Close() error
}
