package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/astrumlab/tzbrief/internal/filestore"
)

// maxUploadBytes is the hard upload ceiling of 4.5 MiB.
const maxUploadBytes = int64(4608 * 1024)

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"video/mp4":  {},
	"video/webm": {},
}

type UploadHandler struct {
	store filestore.Store // nil when no blob service is configured
}

func NewUploadHandler(store filestore.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload validates size and MIME type before any transport attempt, then
// saves to the blob store. With no store configured, or when the store
// fails, it answers with a placeholder URL instead of an error.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "No file provided")
		return
	}
	if file.Size > maxUploadBytes {
		errorJSON(c, http.StatusBadRequest, "File too large")
		return
	}
	opened, err := file.Open()
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Failed to open file")
		return
	}
	defer opened.Close()

	contentType, err := resolveContentType(file, opened)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Failed to read file")
		return
	}
	if _, ok := allowedUploadTypes[contentType]; !ok {
		errorJSON(c, http.StatusBadRequest, "Invalid file type")
		return
	}

	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"url": placeholderURL(file.Filename, contentType)})
		return
	}

	key := buildFileKey(getUserID(c), file.Filename)
	if err := h.store.Save(c.Request.Context(), key, opened, file.Size); err != nil {
		logutil.GetLogger(c.Request.Context()).Warn("blob upload failed, returning placeholder url",
			zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"url": placeholderURL(file.Filename, contentType)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.store.URL(key)})
}

// resolveContentType prefers the declared multipart Content-Type and falls
// back to sniffing the first 512 bytes; the reader is rewound afterwards.
func resolveContentType(file *multipart.FileHeader, opened multipart.File) (string, error) {
	if declared := file.Header.Get("Content-Type"); declared != "" && declared != "application/octet-stream" {
		return declared, nil
	}
	buf := make([]byte, 512)
	read, err := opened.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := opened.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:read]), nil
}

func placeholderURL(filename, contentType string) string {
	label := "Video"
	if strings.HasPrefix(contentType, "image/") {
		label = filename
	}
	return "/placeholder.svg?height=200&width=200&text=" + url.QueryEscape(label)
}

func buildFileKey(userID int64, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	base := hex.EncodeToString(buf)
	if userID != 0 {
		base = strconv.FormatInt(userID, 10) + "_" + base
	}
	return base + ext
}
