package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	Ping(ctx context.Context) error
	UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) error
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
