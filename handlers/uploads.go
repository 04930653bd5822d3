package handlers

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tigerwc/clubsite/internal/storage"
	"github.com/tigerwc/clubsite/pkg/logger"
)

// UploadsHandler stores panel image uploads in the object store and serves
// them back on the public site.
type UploadsHandler struct {
	store *storage.MinIOStorage
}

func NewUploadsHandler(s *storage.MinIOStorage) *UploadsHandler {
	return &UploadsHandler{store: s}
}

// RegisterAdmin mounts the upload endpoint on the authenticated admin group.
func (h *UploadsHandler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.Upload)
}

// RegisterPublic mounts the public download route.
func (h *UploadsHandler) RegisterPublic(r *gin.Engine) {
	r.GET("/uploads/:key", h.Download)
}

// Upload accepts one multipart file under the "file" field and returns the
// public URL to reference from news posts, flyers and sponsor logos.
func (h *UploadsHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}
	defer f.Close()

	// object key keeps the original extension for content-type sniffing
	ext := strings.ToLower(path.Ext(fh.Filename))
	key := uuid.NewString() + ext
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.store.UploadFile(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		logger.Errorf("upload: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key, "url": "/uploads/" + key})
}

// Download streams the stored object to the client.
func (h *UploadsHandler) Download(c *gin.Context) {
	key := c.Param("key")
	// keys are flat UUID names; reject anything path-like
	if key == "" || strings.ContainsAny(key, "/\\") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key"})
		return
	}
	obj, err := h.store.DownloadFile(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	defer obj.Close()

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, obj); err != nil {
		logger.Warnf("upload: stream of %s interrupted: %v", key, err)
	}
}
