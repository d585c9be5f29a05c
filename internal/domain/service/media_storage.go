package service

import (
	"context"
	"io"
)

// MediaStorage stores uploaded files and returns a public URL for them.
type MediaStorage interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}
