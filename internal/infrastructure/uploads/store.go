package uploads

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Store keeps uploaded images on local disk under dir and serves them from
// /uploads.
type Store struct {
	dir         string
	maxFileSize int64
}

func NewStore(dir string, maxFileSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxFileSize: maxFileSize}, nil
}

func (s *Store) Dir() string { return s.dir }

// validate sniffs the content type from the bytes themselves; the declared
// filename and Content-Type header are not trusted.
func (s *Store) validate(data []byte) (ext string, err error) {
	if int64(len(data)) > s.maxFileSize {
		return "", &domain.ValidationError{Field: "file", Reason: fmt.Sprintf("exceeds %d bytes", s.maxFileSize)}
	}
	if len(data) == 0 {
		return "", &domain.ValidationError{Field: "file", Reason: "empty"}
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", &domain.ValidationError{Field: "file", Reason: "unsupported content type " + contentType}
	}
	return ext, nil
}

func (s *Store) SaveReceipt(orderID int64, data []byte) (string, error) {
	return s.SaveImage("receipt", fmt.Sprintf("order_%d", orderID), data)
}

// SaveImage validates and writes the image, returning the public reference.
func (s *Store) SaveImage(prefix, name string, data []byte) (string, error) {
	ext, err := s.validate(data)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s_%s%s", prefix, name, uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return "/uploads/" + filename, nil
}
