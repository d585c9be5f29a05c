package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"slices"
	"strings"

	"tripbook/config"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/service"
	"tripbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// imageExtensions lists the extensions accepted per content type; the first is the default.
var imageExtensions = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
}

type mediaService struct {
	storage  service.MediaStorage
	maxBytes int64
	logger   *slog.Logger
}

// NewMediaService creates the upload use case.
func NewMediaService(storage service.MediaStorage, cfg *config.Config, logger *slog.Logger) usecase.MediaUsecase {
	return &mediaService{
		storage:  storage,
		maxBytes: cfg.Media.MaxBytes,
		logger:   logger,
	}
}

// Upload stores an image under uploads/<owner>/<uuid><ext>.
func (s *mediaService) Upload(ctx context.Context, actor usecase.Actor, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(input.ContentType, ";")[0]))
	allowedExts, ok := imageExtensions[contentType]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnsupportedMediaType)
	}

	if input.Size > s.maxBytes {
		return nil, errors.WithStack(domainerrors.ErrFileTooLarge)
	}

	// The client filename only picks between the extensions of the declared type.
	ext := strings.ToLower(path.Ext(input.Filename))
	if !slices.Contains(allowedExts, ext) {
		ext = allowedExts[0]
	}

	key := path.Join("uploads", actor.UID, uuid.New().String()+ext)

	// Guard against a size header that understates the body.
	body := &limitedReader{r: io.LimitReader(input.Body, s.maxBytes+1), max: s.maxBytes}

	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		if body.exceeded {
			return nil, errors.WithStack(domainerrors.ErrFileTooLarge)
		}
		loggerFrom(ctx, s.logger).Error("Media upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return &usecase.UploadOutput{URL: url, Key: key}, nil
}

// errTooLarge aborts the upload stream once max bytes have been exceeded.
var errTooLarge = errors.New("upload exceeds size limit")

type limitedReader struct {
	r        io.Reader
	max      int64
	read     int64
	exceeded bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.max {
		l.exceeded = true

		return n, errTooLarge
	}

	return n, err
}
