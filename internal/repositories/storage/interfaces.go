package storage

import "io"

// StoredFile describes a binary persisted under the upload root.
// Path is relative to the root and doubles as the /files/ URL suffix.
type StoredFile struct {
	Name string
	Path string
	Size int64
}

type FileRepository interface {
	Save(subdir string, origName string, reader io.Reader) (*StoredFile, error)
	Delete(path string) error
}
