package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// jpegPayload builds a blob starting with the JPEG magic bytes so the
// content-type sniffer recognizes it.
func jpegPayload(size int) []byte {
	payload := make([]byte, size)
	copy(payload, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	return payload
}

func TestSaveAcceptsJPEGUnderLimit(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	payload := jpegPayload(4 * 1024 * 1024)
	name, err := store.Save(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("expected .jpg file name, got %q", name)
	}

	written, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil {
		t.Fatalf("read stored image: %v", err)
	}
	if len(written) != len(payload) {
		t.Fatalf("stored %d bytes, expected %d", len(written), len(payload))
	}
}

func TestSaveRejectsOversizedImage(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	payload := jpegPayload(6 * 1024 * 1024)
	if _, err := store.Save(bytes.NewReader(payload), int64(len(payload))); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestSaveRejectsOversizedImageWithLyingSize(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	payload := jpegPayload(6 * 1024 * 1024)
	if _, err := store.Save(bytes.NewReader(payload), 1024); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge for understated size, got %v", err)
	}
}

func TestSaveRejectsNonImagePayload(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	payload := []byte("%PDF-1.4 definitely not a coffee photo")
	if _, err := store.Save(bytes.NewReader(payload), int64(len(payload))); !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
}

func TestRemoveIgnoresMissingAndSuspiciousNames(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	if err := store.Remove("does-not-exist.jpg"); err != nil {
		t.Fatalf("Remove of missing file returned error: %v", err)
	}
	if err := store.Remove("../../etc/passwd"); err != nil {
		t.Fatalf("Remove of traversal name returned error: %v", err)
	}
}
