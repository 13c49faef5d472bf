package upload

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize is 10MB in bytes.
const MaxImageSize = 10 * 1024 * 1024

var allowedExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// ValidateImage checks an uploaded photo's extension and size.
func ValidateImage(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageSize {
		return fmt.Errorf("file exceeds %d MB", MaxImageSize/(1024*1024))
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return fmt.Errorf("unsupported image format %q", ext)
	}
	return nil
}

// Dest builds a media-relative destination path for an upload, e.g.
// "reviews/2f6c….jpg". The original filename is never trusted.
func Dest(subdir string, fh *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	return filepath.ToSlash(filepath.Join(subdir, uuid.NewString()+ext))
}
