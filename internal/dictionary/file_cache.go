package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileCache stores one raw response document per word under a root directory.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(word string) string {
	return filepath.Join(cache.rootDir, word+".json")
}

// cache returns the stored document for word, calling f and storing its
// result on a miss. Nothing is stored when f fails.
func (cache *FileCache) cache(word string, f func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(word)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(word)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := f()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return contents, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(word string) ([]byte, error) {
	file, err := os.Open(cache.filePath(word))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}

// invalidate removes the stored document for word, if any.
func (cache *FileCache) invalidate(word string) error {
	if err := os.Remove(cache.filePath(word)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove > %w", err)
	}
	return nil
}
