package handler

import (
	"net/http"

	"tripbook/internal/delivery/api/response"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const uploadField = "file"

// MediaHandler serves image uploads.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(mediaUC usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{mediaUC: mediaUC}
}

// Upload stores the multipart "file" part and returns its public URL.
func (h *MediaHandler) Upload(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required")
	}

	f, err := fh.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	out, err := h.mediaUC.Upload(c.Request().Context(), actor, &usecase.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "File uploaded", out)
}
