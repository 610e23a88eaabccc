package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shoproster/shopstaff-backend-go/internal/pkg/storage"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Service stores uploaded files under a per-purpose prefix with
// collision-free generated names.
type Service interface {
	UploadImage(ctx context.Context, prefix string, file io.Reader, filename string) (url string, err error)
}

type FileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) Service {
	return &FileServiceImpl{storage: fileStorage}
}

// UploadImage implements Service.
func (s *FileServiceImpl) UploadImage(ctx context.Context, prefix string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
	stored, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored, 0*time.Second)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file url: %w", err)
	}

	return url, nil
}
