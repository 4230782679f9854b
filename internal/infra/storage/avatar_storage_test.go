package storage

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobAvatarStorage_PutOverwrites(t *testing.T) {
	ctx := t.Context()

	store, err := Open(ctx, "mem://", "/avatars/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	url, err := store.Put(ctx, "user-1.png", strings.NewReader("first"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/avatars/user-1.png", url)

	_, err = store.Put(ctx, "user-1.png", strings.NewReader("second"), "image/png")
	require.NoError(t, err)

	bucket := store.(*blobAvatarStorage).bucket
	reader, err := bucket.NewReader(ctx, "user-1.png", nil)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.Equal(t, "image/png", reader.ContentType())
}

func TestBlobAvatarStorage_EmptyKey(t *testing.T) {
	store, err := Open(t.Context(), "mem://", "/avatars/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Put(t.Context(), "/", bytes.NewReader(nil), "image/png")
	assert.Error(t, err)
}

func TestOpen_FileBucket(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(t.Context(), "file://"+dir+"?create_dir=true", "/avatars/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	url, err := store.Put(t.Context(), "abc.jpg", strings.NewReader("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/avatars/abc.jpg", url)
	assert.FileExists(t, dir+"/abc.jpg")
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(t.Context(), "nope://bucket", "/avatars/")
	assert.Error(t, err)
}
