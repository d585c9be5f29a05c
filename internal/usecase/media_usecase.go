package usecase

import (
	"context"
	"io"
)

// MediaUsecase defines file uploads.
type MediaUsecase interface {
	Upload(ctx context.Context, actor Actor, input *UploadInput) (*UploadOutput, error)
}

// UploadInput describes one uploaded file.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadOutput is the stored location of an upload.
type UploadOutput struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
