package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer is the interface for storing a rendered document.
type Writer interface {
	// Write stores the document under the given base name (without
	// extension) and returns its handle (path for file-backed writers).
	Write(baseName string, data []byte) (string, error)
	// Ext returns the file extension produced by this writer.
	Ext() string
}

// --- File writer (one text file per document) ---

type fileWriter struct {
	dir string
}

// NewFileWriter creates a writer that stores documents as .txt files
// inside dir.
func NewFileWriter(dir string) Writer {
	return &fileWriter{dir: dir}
}

func (w *fileWriter) Write(baseName string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("document: failed to create output dir %s: %w", w.dir, err)
	}
	path := filepath.Join(w.dir, baseName+w.Ext())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("document: failed to write %s: %w", path, err)
	}
	return path, nil
}

func (w *fileWriter) Ext() string {
	return ".txt"
}

// --- Null writer (no-op, used when document output is disabled) ---

type nullWriter struct{}

// NewNullWriter creates a no-op writer for environments that only need
// the persisted bill data.
func NewNullWriter() Writer {
	return &nullWriter{}
}

func (w *nullWriter) Write(baseName string, data []byte) (string, error) {
	return "", nil
}

func (w *nullWriter) Ext() string {
	return ""
}

// NewWriterFromConfig creates the appropriate Writer based on type.
//
//	writerType: "file" or "none"
//	dir: output directory for file writers
func NewWriterFromConfig(writerType, dir string) (Writer, error) {
	switch writerType {
	case "file", "":
		if dir == "" {
			return nil, fmt.Errorf("document: output dir is required for file writer type")
		}
		return NewFileWriter(dir), nil
	case "none":
		return NewNullWriter(), nil
	default:
		return nil, fmt.Errorf("document: unknown writer type %q (use file or none)", writerType)
	}
}
