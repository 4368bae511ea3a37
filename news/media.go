package news

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/config"
)

// MaxMediaBytes caps uploaded media size.
const MaxMediaBytes = 10 << 20

// MediaStore saves uploaded article media and returns the public URL it will
// be served under.
type MediaStore interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
}

// DiskMediaStore writes uploads to a local directory under random names so
// user-supplied filenames never touch the filesystem.
type DiskMediaStore struct {
	dir     string
	baseURL string
}

// NewDiskMediaStore creates the upload directory if needed.
func NewDiskMediaStore(cfg *config.MediaConfig) (*DiskMediaStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media directory %s: %w", cfg.Dir, err)
	}
	return &DiskMediaStore{dir: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/")}, nil
}

// Save stores the upload and returns its URL path. Only the extension of the
// original filename is kept.
func (m *DiskMediaStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxMediaBytes {
		return "", apperror.NewValidationError("media file exceeds the 10MB limit", nil)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".mp4", ".webm":
	default:
		return "", apperror.NewValidationError("unsupported media type", nil)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return "", apperror.NewInternalError("failed to store media", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, MaxMediaBytes)); err != nil {
		return "", apperror.NewInternalError("failed to store media", err)
	}
	return path.Join(m.baseURL, name), nil
}
