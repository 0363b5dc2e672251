// Package storage persists uploaded invoices and generated reports, with
// local filesystem and S3 backends.
package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a stored file does not exist.
var ErrNotFound = errors.New("file not found")

// FileInfo describes a stored file.
type FileInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Storage persists invoice uploads for audit and report workbooks for
// download.
type Storage interface {
	// SaveUpload archives an uploaded invoice. The stored name is prefixed
	// with the upload timestamp so repeated uploads never collide.
	SaveUpload(ctx context.Context, fileName string, r io.Reader) (*FileInfo, error)

	// SaveReport stores a generated report workbook under the given name.
	SaveReport(ctx context.Context, fileName string, data []byte) (*FileInfo, error)

	// OpenReport opens a stored report for download.
	OpenReport(ctx context.Context, fileName string) (io.ReadCloser, *FileInfo, error)

	// ListReports returns all stored reports, newest first.
	ListReports(ctx context.Context) ([]*FileInfo, error)

	// SweepUploads removes archived uploads older than the given age and
	// reports how many were deleted.
	SweepUploads(ctx context.Context, olderThan time.Duration) (int, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string
	LocalPath string

	S3Bucket   string
	S3Region   string
	S3Endpoint string
}

// New creates a Storage implementation based on configuration.
func New(cfg *Config) (Storage, error) {
	switch cfg.Type {
	case "s3":
		return NewS3Storage(cfg)
	default:
		return NewLocalStorage(cfg.LocalPath)
	}
}
