package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/smartinvest/apiserver/config"
)

// ObjectStorage defines the artifact store operations across backends.
// Model artifacts are read at startup and written only by the
// `apiserver artifacts push` command.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Bucket() string
}

// NewFromConfig constructs the configured artifact storage backend.
func NewFromConfig(ctx context.Context, cfg config.Config) (ObjectStorage, error) {
	switch cfg.Artifacts.Backend {
	case config.ArtifactsLocal, "":
		return NewLocalDir(cfg.Artifacts.Dir)
	case config.ArtifactsMinio:
		return NewMinioClient(cfg.Minio)
	case config.ArtifactsGCS:
		return NewGCSClient(ctx, cfg.GCS)
	default:
		return nil, fmt.Errorf("unknown artifacts backend %q", cfg.Artifacts.Backend)
	}
}
