package storage

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxImageSize = 5 * 1024 * 1024

var (
	ErrImageTooLarge = errors.New("image exceeds the 5 MB limit")
	ErrNotAnImage    = errors.New("file is not a supported image")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore writes uploaded tasting photos to a directory on disk. Files are
// renamed to random UUIDs so uploads can never collide or traverse paths.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save validates and stores an image, returning the generated file name.
// The content type is sniffed from the payload rather than trusted from the
// upload metadata.
func (store *ImageStore) Save(reader io.Reader, size int64) (string, error) {
	if size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	payload, err := io.ReadAll(io.LimitReader(reader, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(payload)) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	contentType := http.DetectContentType(payload)
	extension, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrNotAnImage
	}

	name := uuid.NewString() + extension
	if err := os.WriteFile(filepath.Join(store.dir, name), payload, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return name, nil
}

func (store *ImageStore) Remove(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return nil
	}
	err := os.Remove(filepath.Join(store.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (store *ImageStore) Dir() string {
	return store.dir
}
