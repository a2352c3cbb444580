package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalUploaderWritesAndReportsURL(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(filepath.Join(dir, "listings"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	url, err := u.Upload(context.Background(), "tree.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "/uploads/listings/tree.png" {
		t.Fatalf("url=%q", url)
	}

	data, err := os.ReadFile(filepath.Join(u.Dir(), "tree.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("data=%q", data)
	}
}
