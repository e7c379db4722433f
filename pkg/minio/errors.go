package minio

import "errors"

var (
	ErrEndpointRequired    = errors.New("minio: endpoint is required")
	ErrCredentialsRequired = errors.New("minio: access key and secret key are required")
	ErrNotConnected        = errors.New("minio: client is not connected")
	ErrObjectNotFound      = errors.New("minio: object not found")
)
