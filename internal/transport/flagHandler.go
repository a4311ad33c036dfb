package transport

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/ds124wfegd/flagcomposer/internal/entity"
	"github.com/ds124wfegd/flagcomposer/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Combine handles POST /combine with the main_flag and heart_flag uploads.
func (h *FlagHandler) Combine(c *gin.Context) {
	mainFile, err := formFile(c, "main_flag")
	if err != nil {
		h.fail(c, err)
		return
	}
	heartFile, err := formFile(c, "heart_flag")
	if err != nil {
		h.fail(c, err)
		return
	}

	req := entity.CombineRequest{
		RequestID: middleware.RequestIDFrom(c),
		Main:      mainFile,
		Heart:     heartFile,
		Template:  entity.Template(c.DefaultQuery("template", string(entity.TemplateHeart))),
	}

	res, err := h.service.Combine(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", res.PNG)
}

func (h *FlagHandler) fail(c *gin.Context, err error) {
	kind := entity.KindOf(err)
	logrus.WithFields(logrus.Fields{
		"request_id": middleware.RequestIDFrom(c),
		"kind":       kind.String(),
	}).WithError(err).Warn("Combine failed")
	c.JSON(kind.HTTPStatus(), entity.ErrorResponse{Error: err.Error()})
}

// formFile returns nil when the field is absent or the body is not
// multipart. A file part sent without a filename is parsed by Go as an empty
// plain value; it comes back as a header with an empty name so the service
// reports it as unselected. Only an oversized body is an error here.
func formFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err == nil {
		return file, nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return nil, entity.TooLargeError(entity.ErrUploadTooLarge)
	}

	if form := c.Request.MultipartForm; form != nil {
		if values, ok := form.Value[field]; ok && len(values) > 0 && values[0] == "" {
			return &multipart.FileHeader{}, nil
		}
	}
	return nil, nil
}
