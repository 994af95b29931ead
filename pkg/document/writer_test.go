package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterWritesTxt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bills")
	w := NewFileWriter(dir)

	path, err := w.Write("bill_20240002_01711-000000", []byte("page\n"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if want := filepath.Join(dir, "bill_20240002_01711-000000.txt"); path != want {
		t.Errorf("path: got %s, want %s", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "page\n" {
		t.Errorf("content: got %q", data)
	}
}

func TestFileWriterOverwrites(t *testing.T) {
	w := NewFileWriter(t.TempDir())

	if _, err := w.Write("bill", []byte("first")); err != nil {
		t.Fatal(err)
	}
	path, err := w.Write("bill", []byte("second"))
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("re-render did not overwrite: got %q", data)
	}
}

func TestNullWriter(t *testing.T) {
	w := NewNullWriter()
	path, err := w.Write("anything", []byte("data"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if path != "" {
		t.Errorf("null writer returned a path: %q", path)
	}
}

func TestNewWriterFromConfig(t *testing.T) {
	tests := []struct {
		name       string
		writerType string
		dir        string
		wantErr    bool
		wantExt    string
	}{
		{"file", "file", "/tmp/bills", false, ".txt"},
		{"default is file", "", "/tmp/bills", false, ".txt"},
		{"file without dir", "file", "", true, ""},
		{"none", "none", "", false, ""},
		{"unknown", "s3", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWriterFromConfig(tt.writerType, tt.dir)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w.Ext() != tt.wantExt {
				t.Errorf("Ext: got %q, want %q", w.Ext(), tt.wantExt)
			}
		})
	}
}
