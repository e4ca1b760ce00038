package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/userhub/userhub/internal/users"
	"github.com/userhub/userhub/pkg/logger"
	"github.com/userhub/userhub/pkg/metrics"
)

// AvatarStore abstracts the MinIO wrapper so tests can substitute a fake.
type AvatarStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// UserHandler holds dependencies
type UserHandler struct {
	svc     *users.Service
	avatars AvatarStore // nil when object storage is not configured
}

func NewUserHandler(svc *users.Service, avatars AvatarStore) *UserHandler {
	return &UserHandler{svc: svc, avatars: avatars}
}

// Register routes under the given group (normally /api/v1)
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Rename)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/avatar", h.UploadAvatar)
	g.GET("/:id/avatar", h.DownloadAvatar)
}

// Create accepts a candidate user record, validates/normalizes the name field
// and persists the record. The body is decoded into a generic map so that an
// absent name and a wrong-typed name can be told apart.
func (h *UserHandler) Create(c *gin.Context) {
	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Create(c.Request.Context(), attrs)
	if err != nil {
		if field, ok := validationField(err); ok {
			metrics.ValidationFailures.WithLabelValues(field).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": field})
			return
		}
		logger.Errorf("user create error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user create failed"})
		return
	}
	metrics.UsersCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Errorf("user lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) List(c *gin.Context) {
	us, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("user list error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": us})
}

// Rename applies the name contract to the supplied value and updates the record.
func (h *UserHandler) Rename(c *gin.Context) {
	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Rename(c.Request.Context(), c.Param("id"), attrs["name"])
	if err != nil {
		if field, ok := validationField(err); ok {
			metrics.ValidationFailures.WithLabelValues(field).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": field})
			return
		}
		if errors.Is(err, users.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Errorf("user rename error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user rename failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Errorf("user delete error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// UploadAvatar stores a multipart "file" part in object storage and records
// the object key on the user.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "avatar storage not configured"})
		return
	}
	id := c.Param("id")
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file part required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := "avatars/" + id
	if err := h.avatars.Upload(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		logger.Errorf("avatar upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "avatar upload failed"})
		return
	}
	if err := h.svc.SetAvatarKey(c.Request.Context(), id, key); err != nil {
		logger.Errorf("avatar key update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "avatar upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarKey": key})
}

// DownloadAvatar streams the stored avatar. With ?presign=true a short-lived
// URL is returned instead of the object body.
func (h *UserHandler) DownloadAvatar(c *gin.Context) {
	if h.avatars == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "avatar storage not configured"})
		return
	}
	u, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}
	if u == nil || u.AvatarKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "avatar not found"})
		return
	}
	if c.Query("presign") == "true" {
		url, err := h.avatars.PresignedURL(c.Request.Context(), u.AvatarKey, 15*time.Minute)
		if err != nil {
			logger.Errorf("avatar presign error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "avatar presign failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}
	rc, err := h.avatars.Download(c.Request.Context(), u.AvatarKey)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "avatar not found"})
		return
	}
	defer rc.Close()
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.Warnf("avatar stream aborted: %v", err)
	}
}

// validationField reports whether err is a field validation failure and which
// field it names.
func validationField(err error) (string, bool) {
	var mfe *users.MissingFieldError
	if errors.As(err, &mfe) {
		return mfe.Field, true
	}
	var ite *users.InvalidTypeError
	if errors.As(err, &ite) {
		return ite.Field, true
	}
	return "", false
}
