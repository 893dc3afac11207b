package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploaded images into a single directory. Names are generated
// per upload, so identically named files never overwrite each other.
type Store struct {
	Dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Save persists the uploaded file under a generated name and returns that
// name. The caller stores it as the product's image reference.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return name, nil
}
