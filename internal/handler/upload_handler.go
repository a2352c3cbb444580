package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/treemarket/treemarket-backend/internal/storage"
)

const (
	maxUploadFiles    = 5
	maxUploadFileSize = 5 * 1024 * 1024 // 5MB per file
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type UploadHandler struct {
	uploader storage.Uploader
}

func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

type UploadResponse struct {
	URLs []string `json:"urls"`
}

// Upload accepts up to five images in the multipart field "files". Every
// file is size- and type-checked before anything is written.
func (h *UploadHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("No files provided"))
	}
	files := form.File["files"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("No files provided"))
	}
	if len(files) > maxUploadFiles {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("Maximum 5 images allowed"))
	}

	for _, fh := range files {
		if fh.Size > maxUploadFileSize {
			return c.JSON(http.StatusBadRequest,
				NewErrorResponse(fmt.Sprintf("File too large: %s. Maximum size is 5MB", fh.Filename)))
		}
		contentType, err := sniffContentType(fh)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to upload files"))
		}
		if _, ok := allowedImageTypes[contentType]; !ok {
			return c.JSON(http.StatusBadRequest,
				NewErrorResponse(fmt.Sprintf("Invalid file type: %s. Allowed: JPEG, PNG, WebP", contentType)))
		}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.storeFile(c, fh)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to upload files"))
		}
		urls = append(urls, url)
	}
	return c.JSON(http.StatusOK, UploadResponse{URLs: urls})
}

func (h *UploadHandler) storeFile(c echo.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType, _ := sniffContentType(fh)
	ext := allowedImageTypes[contentType]
	if e := strings.ToLower(filepath.Ext(fh.Filename)); e != "" {
		ext = e
	}
	filename := uuid.NewString() + ext

	return h.uploader.Upload(c.Request().Context(), filename, contentType, src)
}

// sniffContentType detects the type from file content rather than trusting
// the client-supplied header.
func sniffContentType(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
