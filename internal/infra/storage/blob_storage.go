// Package storage stores uploaded media in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"tripbook/config"
	"tripbook/internal/domain/service"
	"tripbook/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the dependencies of the media storage.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params Params) (service.MediaStorage, error) {
	mc := params.Config.Media
	if mc == nil || mc.BucketURL == "" {
		return nil, errors.New("media.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, mc.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", mc.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Media bucket opened", slog.String("bucket_url", mc.BucketURL))

	return newBlobStorage(bucket, mc.PublicBaseURL, params.Logger), nil
}

func newBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *blobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload streams r into the bucket. A failed copy aborts the write so no partial object is left.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	s.logger.Debug("Media stored", slog.String("key", key))

	return s.publicBaseURL + "/" + key, nil
}
