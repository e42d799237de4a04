package handler

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUpload stores the optional file from the named form field under
// the upload directory and returns its public URL path. A request
// without the file yields an empty path and no error.
func (a *API) saveUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		// No multipart body at all also means no file was supplied.
		if c.Request.MultipartForm == nil {
			return "", nil
		}
		return "", err
	}

	if err := os.MkdirAll(a.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}

	base := filepath.Base(file.Filename)
	if base == "." || base == "/" || base == "" {
		base = uuid.New().String()
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)

	if err := c.SaveUploadedFile(file, filepath.Join(a.cfg.UploadDir, name)); err != nil {
		return "", err
	}

	return path.Join(a.cfg.UploadURLPath, name), nil
}
