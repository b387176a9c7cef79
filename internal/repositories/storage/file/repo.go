package filerepo

import (
	"fmt"
	"io"
	"mediaportal/internal/models"
	"mediaportal/internal/repositories/storage"
	"os"
	"path"
	"path/filepath"

	uuid "github.com/satori/go.uuid"
)

const pkg = "fileRepo/"

type repository struct {
	basePath string
}

func NewRepository(basePath string) *repository {
	return &repository{basePath: basePath}
}

// Save writes the reader under a generated collision-resistant name so two
// uploads with the same original name never clobber each other.
func (r *repository) Save(subdir string, origName string, reader io.Reader) (*storage.StoredFile, error) {
	op := pkg + "Save"

	name := uuid.NewV4().String() + filepath.Ext(origName)
	relPath := path.Join(subdir, name)
	fullPath := filepath.Join(r.basePath, subdir, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	size, err := io.Copy(f, reader)
	if err != nil {
		_ = os.Remove(fullPath)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.StoredFile{
		Name: name,
		Path: relPath,
		Size: size,
	}, nil
}

// Open reads back a stored binary. Serving goes through the /files/ static
// handler; this exists for tooling and tests.
func (r *repository) Open(relPath string) (io.ReadCloser, error) {
	op := pkg + "Open"

	f, err := os.Open(filepath.Join(r.basePath, filepath.FromSlash(relPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.ErrFileNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *repository) Delete(relPath string) error {
	op := pkg + "Delete"

	err := os.Remove(filepath.Join(r.basePath, filepath.FromSlash(relPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return models.ErrFileNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
