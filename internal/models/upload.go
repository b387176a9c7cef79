package models

import "io"

// FileUpload carries an incoming binary and its client-declared metadata.
// Mime and Size are validated against per-type rules before any I/O.
type FileUpload struct {
	FileName string
	Mime     string
	Size     int64
	Content  io.Reader
}
