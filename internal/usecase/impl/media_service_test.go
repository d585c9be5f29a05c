package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"tripbook/config"
	domainerrors "tripbook/internal/domain/errors"
	mockSvc "tripbook/internal/mocks/service"
	"tripbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMediaService(t *testing.T, maxBytes int64) (usecase.MediaUsecase, *mockSvc.MockMediaStorage) {
	storage := mockSvc.NewMockMediaStorage(t)
	cfg := &config.Config{Media: &config.MediaConfig{MaxBytes: maxBytes}}

	return NewMediaService(storage, cfg, discardLogger()), storage
}

func TestMediaService_Upload(t *testing.T) {
	svc, storage := createTestMediaService(t, 1024)
	ctx := context.Background()

	storage.EXPECT().Upload(ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "uploads/u1/") && strings.HasSuffix(key, ".png")
	}), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
			body, err := io.ReadAll(r)
			if err != nil {
				return "", err
			}
			if string(body) != "fake-png" {
				return "", errors.New("unexpected body")
			}

			return "https://cdn.example.com/" + key, nil
		})

	out, err := svc.Upload(ctx, usecase.Actor{UID: "u1"}, &usecase.UploadInput{
		Filename:    "Beach.PNG",
		ContentType: "image/png",
		Size:        8,
		Body:        strings.NewReader("fake-png"),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.URL, "https://cdn.example.com/uploads/u1/"))
}

func TestMediaService_Upload_ExtensionFollowsContentType(t *testing.T) {
	tests := []struct {
		filename    string
		contentType string
		wantExt     string
	}{
		{filename: "page.html", contentType: "image/png", wantExt: ".png"},
		{filename: "logo.svg", contentType: "image/png", wantExt: ".png"},
		{filename: "photo.JPEG", contentType: "image/jpeg", wantExt: ".jpeg"},
		{filename: "photo.png", contentType: "image/jpeg", wantExt: ".jpg"},
		{filename: "noext", contentType: "image/webp", wantExt: ".webp"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			svc, storage := createTestMediaService(t, 1024)
			ctx := context.Background()

			storage.EXPECT().Upload(ctx, mock.Anything, tt.contentType, mock.Anything).
				RunAndReturn(func(_ context.Context, key, _ string, _ io.Reader) (string, error) {
					return "https://cdn.example.com/" + key, nil
				})

			out, err := svc.Upload(ctx, usecase.Actor{UID: "u1"}, &usecase.UploadInput{
				Filename:    tt.filename,
				ContentType: tt.contentType,
				Size:        1,
				Body:        strings.NewReader("x"),
			})

			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(out.Key, tt.wantExt), out.Key)
		})
	}
}

func TestMediaService_Upload_Rejections(t *testing.T) {
	svc, _ := createTestMediaService(t, 4)

	_, err := svc.Upload(context.Background(), usecase.Actor{UID: "u1"}, &usecase.UploadInput{
		Filename: "notes.pdf", ContentType: "application/pdf", Size: 1, Body: strings.NewReader("x"),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))

	_, err = svc.Upload(context.Background(), usecase.Actor{UID: "u1"}, &usecase.UploadInput{
		Filename: "big.jpg", ContentType: "image/jpeg", Size: 5, Body: strings.NewReader("12345"),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestMediaService_Upload_BodyLargerThanDeclared(t *testing.T) {
	svc, storage := createTestMediaService(t, 4)
	ctx := context.Background()

	storage.EXPECT().Upload(ctx, mock.Anything, "image/jpeg", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, r io.Reader) (string, error) {
			_, err := io.ReadAll(r)

			return "", err
		})

	_, err := svc.Upload(ctx, usecase.Actor{UID: "u1"}, &usecase.UploadInput{
		Filename: "sneaky.jpg", ContentType: "image/jpeg", Size: 1, Body: strings.NewReader("123456789"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}
