package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	uploadsDir = "uploads"
	reportsDir = "reports"

	// Matches the prefix the extraction layer strips from file names when
	// hunting for invoice numbers.
	uploadTimeFormat = "20060102_150405"
)

// LocalStorage implements Storage on the local filesystem with uploads/ and
// reports/ subdirectories under a base path.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	for _, dir := range []string{uploadsDir, reportsDir} {
		if err := os.MkdirAll(filepath.Join(basePath, dir), 0o755); err != nil {
			return nil, fmt.Errorf("creating storage directory: %w", err)
		}
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (s *LocalStorage) SaveUpload(_ context.Context, fileName string, r io.Reader) (*FileInfo, error) {
	stored := fmt.Sprintf("%s_%s", time.Now().Format(uploadTimeFormat), sanitizeFilename(fileName))
	path := filepath.Join(s.basePath, uploadsDir, stored)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("writing upload: %w", err)
	}

	return &FileInfo{
		ID:        uuid.New(),
		Name:      stored,
		Size:      size,
		CreatedAt: time.Now(),
	}, nil
}

func (s *LocalStorage) SaveReport(_ context.Context, fileName string, data []byte) (*FileInfo, error) {
	name := sanitizeFilename(fileName)
	path := filepath.Join(s.basePath, reportsDir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	return &FileInfo{
		ID:        uuid.New(),
		Name:      name,
		Size:      int64(len(data)),
		CreatedAt: time.Now(),
	}, nil
}

func (s *LocalStorage) OpenReport(_ context.Context, fileName string) (io.ReadCloser, *FileInfo, error) {
	name := sanitizeFilename(fileName)
	path := filepath.Join(s.basePath, reportsDir, name)

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("checking report: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening report: %w", err)
	}
	return f, &FileInfo{Name: name, Size: stat.Size(), CreatedAt: stat.ModTime()}, nil
}

func (s *LocalStorage) ListReports(_ context.Context) ([]*FileInfo, error) {
	entries, err := os.ReadDir(filepath.Join(s.basePath, reportsDir))
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	files := make([]*FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, &FileInfo{
			Name:      entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].CreatedAt.After(files[j].CreatedAt) })
	return files, nil
}

func (s *LocalStorage) SweepUploads(_ context.Context, olderThan time.Duration) (int, error) {
	dir := filepath.Join(s.basePath, uploadsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("listing uploads: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// sanitizeFilename keeps stored names inside the storage directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		"..", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}
