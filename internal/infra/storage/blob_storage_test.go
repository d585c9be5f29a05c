package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return newBlobStorage(bucket, "https://cdn.example.com/media/", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobStorage_Upload(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	url, err := s.Upload(ctx, "uploads/u1/pic.png", "image/png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/uploads/u1/pic.png", url)

	data, err := s.bucket.ReadAll(ctx, "uploads/u1/pic.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := s.bucket.Attributes(ctx, "uploads/u1/pic.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStorage_Upload_ReaderFailureLeavesNoObject(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, "uploads/u1/broken.png", "image/png", failingReader{})
	require.Error(t, err)

	exists, err := s.bucket.Exists(ctx, "uploads/u1/broken.png")
	require.NoError(t, err)
	assert.False(t, exists)
}
