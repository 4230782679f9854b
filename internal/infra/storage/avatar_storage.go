// Package storage keeps user avatars in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"contactbook/config"
	"contactbook/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

type blobAvatarStorage struct {
	bucket    *blob.Bucket
	urlPrefix string
}

// Params holds dependencies for the avatar storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStorage opens the configured bucket and closes it on shutdown.
func NewAvatarStorage(params Params) (service.AvatarStorage, error) {
	cfg := params.Config.Avatar

	storage, err := Open(context.Background(), cfg.BucketURL, cfg.URLPrefix)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Avatar storage opened", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Open opens bucketURL; stored keys are published as urlPrefix+key.
func Open(ctx context.Context, bucketURL, urlPrefix string) (service.AvatarStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open avatar bucket %q", bucketURL)
	}

	return &blobAvatarStorage{
		bucket:    bucket,
		urlPrefix: urlPrefix,
	}, nil
}

// Put writes src under key, overwriting any previous avatar with the same key.
func (s *blobAvatarStorage) Put(ctx context.Context, key string, src io.Reader, contentType string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errors.New("avatar key is empty")
	}

	err := s.bucket.Upload(ctx, key, src, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to store avatar %q", key)
	}

	return s.urlPrefix + key, nil
}

func (s *blobAvatarStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
