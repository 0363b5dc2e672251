package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// S3Storage is a placeholder for an S3-compatible backend. Configuration is
// validated so misconfiguration fails at startup rather than on first upload.
type S3Storage struct {
	bucket   string
	region   string
	endpoint string
}

func NewS3Storage(cfg *Config) (*S3Storage, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.S3Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}
	return &S3Storage{
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
	}, nil
}

var errS3NotImplemented = fmt.Errorf("S3 storage not implemented, set STORAGE_TYPE=local")

func (s *S3Storage) SaveUpload(context.Context, string, io.Reader) (*FileInfo, error) {
	return nil, errS3NotImplemented
}

func (s *S3Storage) SaveReport(context.Context, string, []byte) (*FileInfo, error) {
	return nil, errS3NotImplemented
}

func (s *S3Storage) OpenReport(context.Context, string) (io.ReadCloser, *FileInfo, error) {
	return nil, nil, errS3NotImplemented
}

func (s *S3Storage) ListReports(context.Context) ([]*FileInfo, error) {
	return nil, errS3NotImplemented
}

func (s *S3Storage) SweepUploads(context.Context, time.Duration) (int, error) {
	return 0, errS3NotImplemented
}
