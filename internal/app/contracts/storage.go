package contracts

import (
	"context"
	"io"
	"time"
)

type DocumentStorage interface {
	UploadClaimBundle(ctx context.Context, objectName, contentType string, file io.Reader, size int64) (string, error)
	PresignedDownloadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
