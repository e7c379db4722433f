package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Connect verifies connectivity and marks the client connected.
func (m *minioImpl) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
	defer cancel()

	if _, err := m.client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	m.mu.Lock()
	m.connected = true
	m.mu.Unlock()
	return nil
}

// HealthCheck verifies the MinIO server is reachable.
func (m *minioImpl) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
	defer cancel()

	if _, err := m.client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio health check failed: %w", err)
	}
	return nil
}

// Close marks the client disconnected.
func (m *minioImpl) Close() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

// EnsureBucket creates the bucket if it does not exist.
func (m *minioImpl) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

// BucketExists checks whether a bucket exists.
func (m *minioImpl) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
	}
	return exists, nil
}

// UploadFile uploads an object and returns its stored metadata.
func (m *minioImpl) UploadFile(ctx context.Context, req UploadRequest) (*FileInfo, error) {
	opts := minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	}
	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s/%s: %w", req.BucketName, req.ObjectName, err)
	}
	return &FileInfo{
		BucketName:  req.BucketName,
		ObjectName:  req.ObjectName,
		Size:        info.Size,
		ContentType: req.ContentType,
		ETag:        info.ETag,
		Metadata:    req.Metadata,
	}, nil
}

// DownloadFile returns a reader over the object and its metadata.
// The caller is responsible for closing the reader.
func (m *minioImpl) DownloadFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, *FileInfo, error) {
	obj, err := m.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download %s/%s: %w", bucketName, objectName, err)
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil, ErrObjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to stat %s/%s: %w", bucketName, objectName, err)
	}
	return obj, fileInfoFromStat(bucketName, stat), nil
}

// DeleteFile removes an object.
func (m *minioImpl) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := m.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucketName, objectName, err)
	}
	return nil
}

// FileExists checks whether an object exists.
func (m *minioImpl) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s/%s: %w", bucketName, objectName, err)
	}
	return true, nil
}

// GetFileInfo returns object metadata.
func (m *minioImpl) GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error) {
	stat, err := m.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to stat %s/%s: %w", bucketName, objectName, err)
	}
	return fileInfoFromStat(bucketName, stat), nil
}

// ListFiles lists objects under a prefix.
func (m *minioImpl) ListFiles(ctx context.Context, bucketName, prefix string) ([]FileInfo, error) {
	var files []FileInfo
	for obj := range m.client.ListObjects(ctx, bucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s/%s: %w", bucketName, prefix, obj.Err)
		}
		files = append(files, FileInfo{
			BucketName:   bucketName,
			ObjectName:   obj.Key,
			Size:         obj.Size,
			ETag:         obj.ETag,
			LastModified: obj.LastModified,
		})
	}
	return files, nil
}

func fileInfoFromStat(bucketName string, stat minio.ObjectInfo) *FileInfo {
	return &FileInfo{
		BucketName:   bucketName,
		ObjectName:   stat.Key,
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		ETag:         stat.ETag,
		LastModified: stat.LastModified,
		Metadata:     stat.UserMetadata,
	}
}
