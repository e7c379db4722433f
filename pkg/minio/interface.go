package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// IMinIO aggregates object storage operations used by the service.
type IMinIO interface {
	Connection
	BucketManager
	ObjectOps
}

// Connection defines interface for MinIO connection operations.
type Connection interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// BucketManager defines operations for managing buckets.
type BucketManager interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

// ObjectOps defines object-level operations.
type ObjectOps interface {
	UploadFile(ctx context.Context, req UploadRequest) (*FileInfo, error)
	DownloadFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, *FileInfo, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
	FileExists(ctx context.Context, bucketName, objectName string) (bool, error)
	GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error)
	ListFiles(ctx context.Context, bucketName, prefix string) ([]FileInfo, error)
}

// NewMinIO creates a new MinIO client. Returns an implementation of IMinIO.
func NewMinIO(cfg MinIOConfig) (IMinIO, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &minioImpl{client: client, config: cfg}, nil
}
